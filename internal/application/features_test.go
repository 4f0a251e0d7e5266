package application_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/cucumber/godog"
	"github.com/luxura/luxura/internal/adapters/outbound/catalog"
	"github.com/luxura/luxura/internal/application"
	"github.com/luxura/luxura/internal/domain"
	"github.com/luxura/luxura/internal/domain/render"
)

type configuratorTestContext struct {
	svc *application.ConfiguratorService
	err error
}

func (c *configuratorTestContext) reset() {
	c.svc = nil
	c.err = nil
}

func (c *configuratorTestContext) aNewConfiguratorSession() error {
	c.svc = application.NewConfiguratorService(catalog.Default(), nil)
	return nil
}

func (c *configuratorTestContext) iToggleAccessory(id string) error {
	_, c.err = c.svc.ToggleAccessory(id)
	return c.err
}

func (c *configuratorTestContext) iSelectModel(id string) error {
	c.err = c.svc.Select(application.CategoryModel, id)
	return c.err
}

func (c *configuratorTestContext) iSelectColor(id string) error {
	// failures are checked by a later step
	c.err = c.svc.Select(application.CategoryColor, id)
	return nil
}

func (c *configuratorTestContext) iGoBack() error {
	c.svc.Back()
	return nil
}

func (c *configuratorTestContext) iAdvanceTimes(n int) error {
	for i := 0; i < n; i++ {
		c.svc.Next()
	}
	return nil
}

func (c *configuratorTestContext) iJumpTo(step string) error {
	c.svc.Jump(step)
	return nil
}

func (c *configuratorTestContext) theSelectedModelIs(id string) error {
	if got := c.svc.Selection().Model.ID; got != id {
		return fmt.Errorf("expected model %q, got %q", id, got)
	}
	return nil
}

func (c *configuratorTestContext) theSelectedColorIs(id string) error {
	if got := c.svc.Selection().Color.ID; got != id {
		return fmt.Errorf("expected color %q, got %q", id, got)
	}
	return nil
}

func (c *configuratorTestContext) theCurrentStepIs(step string) error {
	if got := c.svc.Step().ID; string(got) != step {
		return fmt.Errorf("expected step %q, got %q", step, got)
	}
	return nil
}

func (c *configuratorTestContext) theTotalPriceIs(total int) error {
	if got := c.svc.Total(); got != total {
		return fmt.Errorf("expected total %d, got %d", total, got)
	}
	if q := c.svc.Quote(); q.Total != total {
		return fmt.Errorf("quote total %d disagrees with %d", q.Total, total)
	}
	return nil
}

func (c *configuratorTestContext) theFormattedTotalIs(want string) error {
	if got := domain.FormatPrice(c.svc.Total(), domain.DefaultCurrency); got != want {
		return fmt.Errorf("expected %q, got %q", want, got)
	}
	return nil
}

func (c *configuratorTestContext) theLastOperationFailedWithAnUnknownOption() error {
	if c.err == nil {
		return errors.New("expected operation to fail but it succeeded")
	}
	if !errors.Is(c.err, domain.ErrUnknownOption) {
		return fmt.Errorf("expected unknown option error, got %v", c.err)
	}
	return nil
}

func (c *configuratorTestContext) theSceneHasWheelsAndABody(wheels int) error {
	counts := c.svc.Render(0).RoleCounts()
	if counts[render.RoleWheel] != wheels {
		return fmt.Errorf("expected %d wheels, got %d", wheels, counts[render.RoleWheel])
	}
	if counts[render.RoleBody] == 0 {
		return errors.New("scene has no body layer")
	}
	return nil
}

func (c *configuratorTestContext) theSceneGlassCountIs(n int) error {
	if got := c.svc.Render(0).RoleCounts()[render.RoleGlass]; got != n {
		return fmt.Errorf("expected %d glass layers, got %d", n, got)
	}
	return nil
}

func InitializeScenario(ctx *godog.ScenarioContext) {
	tc := &configuratorTestContext{}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		tc.reset()
		return ctx, nil
	})

	// Given steps
	ctx.Step(`^a new configurator session$`, tc.aNewConfiguratorSession)

	// When steps
	ctx.Step(`^I toggle accessory "([^"]*)"$`, tc.iToggleAccessory)
	ctx.Step(`^I select model "([^"]*)"$`, tc.iSelectModel)
	ctx.Step(`^I select color "([^"]*)"$`, tc.iSelectColor)
	ctx.Step(`^I go back$`, tc.iGoBack)
	ctx.Step(`^I advance (\d+) times$`, tc.iAdvanceTimes)
	ctx.Step(`^I jump to "([^"]*)"$`, tc.iJumpTo)

	// Then steps
	ctx.Step(`^the selected model is "([^"]*)"$`, tc.theSelectedModelIs)
	ctx.Step(`^the selected color is "([^"]*)"$`, tc.theSelectedColorIs)
	ctx.Step(`^the current step is "([^"]*)"$`, tc.theCurrentStepIs)
	ctx.Step(`^the total price is (\d+)$`, tc.theTotalPriceIs)
	ctx.Step(`^the formatted total is "([^"]*)"$`, tc.theFormattedTotalIs)
	ctx.Step(`^the last operation failed with an unknown option$`, tc.theLastOperationFailedWithAnUnknownOption)
	ctx.Step(`^the scene has (\d+) wheels and a body$`, tc.theSceneHasWheelsAndABody)
	ctx.Step(`^the scene glass count is (\d+)$`, tc.theSceneGlassCountIs)
}

func TestFeatures(t *testing.T) {
	suite := godog.TestSuite{
		ScenarioInitializer: InitializeScenario,
		Options: &godog.Options{
			Format:   "pretty",
			Paths:    []string{"../../testdata/features/configurator.feature"},
			TestingT: t,
		},
	}

	if suite.Run() != 0 {
		t.Fatal("non-zero status returned, failed to run feature tests")
	}
}
