package render

// Shared literal colors of the shape builders.
var (
	dark      = Solid("#1a1a1a")
	black     = Solid("#0a0a0a")
	white     = Solid("#ffffff")
	warmWhite = Solid("#fef9c3")
	red       = Solid("#dc2626")
	softRed   = Solid("#f87171")
	pink      = Solid("#fca5a5")
	amber     = Solid("#fbbf24")
	sheenLine = Solid("rgba(255,255,255,0.2)")
)

// glass draws a window panel framed in the shadow tone.
func glass(p Palette, d string) Shape {
	return Path(d, PaintWindow).Stroked(p.shadow(), 2)
}

// stroke draws an unfilled line along d.
func stroke(d string, p Paint, width float64) Shape {
	return Path(d, PaintNone).Stroked(p, width)
}

// Aggressive wedge. Also the fallback silhouette.
func aventadorShape(p Palette) []Layer {
	layers := []Layer{
		layer(RoleBody, "UltraLowBody",
			Path("M35 190 L50 185 L80 160 L110 125 L160 100 L220 85 L380 85 L440 100 L490 125 L520 160 L550 185 L565 190 L568 205 L568 218 L32 218 L32 205 Z", PaintBody)),
		layer(RoleCabin, "AngularRoof",
			Path("M185 100 L210 55 L395 55 L420 100 Z", PaintBody)),
		layer(RoleGlass, "Windshield",
			glass(p, "M188 98 L212 58 L300 58 L300 98 Z")),
		layer(RoleGlass, "SideWindow",
			glass(p, "M305 58 L390 58 L415 98 L305 98 Z")),
		layer(RoleTrim, "CharacterLines",
			stroke("M45 175 L555 175", p.shadow(), 2).Faded(0.6),
			stroke("M120 130 L480 130", p.shadow(), 1).Faded(0.4)),
		glowing(RoleHeadlight, "YHeadlights",
			Path("M60 170 L90 145 L95 165 L60 175 Z", white).Faded(0.95),
			Path("M75 165 L105 140 L110 155 L80 170 Z", warmWhite).Faded(0.9)),
		glowing(RoleTaillight, "YTaillights",
			Path("M540 170 L510 145 L505 165 L540 175 Z", red).Faded(0.9),
			Path("M525 165 L495 140 L490 155 L520 170 Z", softRed).Faded(0.9)),
		layer(RoleAero, "HexagonIntake",
			Path("M45 180 L65 155 L95 155 L110 180 L95 200 L65 200 Z", dark).Faded(0.9)),
		layer(RoleAero, "SideScoops",
			Path("M250 105 L280 105 L270 140 L240 140 Z", dark).Faded(0.7),
			Path("M320 105 L350 105 L360 140 L330 140 Z", dark).Faded(0.7)),
		layer(RoleAero, "RearDiffuser",
			Path("M480 200 L520 180 L555 200 L555 218 L480 218 Z", dark).Faded(0.8)),
	}
	layers = append(layers, wheelPair(p, 145, 455, 212, 46, 5, false)...)
	return append(layers, layer(RoleTrim, "SideMirror",
		Polygon(p.body(), Point{175, 90}, Point{195, 85}, Point{195, 100}, Point{175, 95}).Stroked(p.shadow(), 1)))
}

// Hybrid supercar with a curved roof.
func sf90Shape(p Palette) []Layer {
	layers := []Layer{
		layer(RoleBody, "FlowingBody",
			Path("M40 185 L55 180 L85 155 L115 120 L170 95 L240 80 L360 80 L430 95 L485 120 L515 155 L545 180 L560 185 L565 200 L565 218 L35 218 L35 200 Z", PaintBody)),
		layer(RoleCabin, "CurvedRoof",
			Path("M195 95 Q 210 50, 300 50 Q 390 50, 405 95 Z", PaintBody)),
		layer(RoleGlass, "Windshield",
			glass(p, "M198 93 Q 212 52, 295 52 L 295 93 Z")),
		layer(RoleGlass, "SideWindow",
			glass(p, "M300 52 Q 388 52, 402 93 L 300 93 Z")),
		layer(RoleAero, "FrontVents",
			Path("M50 175 L80 150 L100 175 Z", dark).Faded(0.9),
			Path("M60 180 L90 160 L105 180 Z", dark).Faded(0.7)),
		glowing(RoleHeadlight, "SignatureHeadlights",
			Path("M90 140 L130 135 L130 155 L90 160 Z", white).Faded(0.95),
			Path("M95 145 L125 142 L125 150 L95 152 Z", warmWhite)),
		glowing(RoleTaillight, "TwinRoundTaillights",
			Circle(525, 160, 12, red).Faded(0.9),
			Circle(525, 160, 7, softRed),
			Circle(545, 170, 10, red).Faded(0.9),
			Circle(545, 170, 5, softRed)),
		layer(RoleAero, "SideIntakes",
			Path("M265 110 L290 110 L285 145 L260 145 Z", dark).Faded(0.7),
			Path("M310 110 L335 110 L340 145 L315 145 Z", dark).Faded(0.7)),
		layer(RoleTrim, "CharacterLine",
			stroke("M55 170 L545 170", p.shadow(), 2).Faded(0.5)),
		layer(RoleAero, "ActiveRearDiffuser",
			Path("M470 200 L510 175 L550 200 L550 218 L470 218 Z", PaintCarbon)),
		layer(RoleTrim, "HybridBadge",
			Rect(430, 145, 35, 15, 3, p.shadow()).Faded(0.5)),
	}
	layers = append(layers, wheelPair(p, 145, 455, 212, 45, 5, false)...)
	return append(layers, layer(RoleTrim, "AeroMirror",
		Path("M175 90 Q 185 82, 200 88 L 198 98 Q 185 95, 175 95 Z", p.body()).Stroked(p.shadow(), 1)))
}

// Sculpted body with air channels and a teardrop cabin.
func mclaren720SShape(p Palette) []Layer {
	layers := []Layer{
		layer(RoleBody, "SculptedBody",
			Path("M42 185 L58 178 L90 145 L130 110 L190 88 L260 78 L340 78 L410 88 L470 110 L510 145 L542 178 L558 185 L563 200 L563 218 L37 218 L37 200 Z", PaintBody)),
		layer(RoleCabin, "TeardropCabin",
			Path("M210 88 Q 230 45, 300 45 Q 370 45, 390 88 Z", PaintBody)),
		layer(RoleGlass, "WraparoundWindshield",
			glass(p, "M213 86 Q 232 48, 295 48 L 295 86 Z")),
		layer(RoleGlass, "SideGlass",
			glass(p, "M300 48 Q 368 48, 387 86 L 300 86 Z")),
		layer(RoleAero, "AirChannels",
			Path("M180 130 Q 200 155, 200 190 L 190 190 Q 190 160, 175 140 Z", dark).Faded(0.6),
			Path("M420 130 Q 400 155, 400 190 L 410 190 Q 410 160, 425 140 Z", dark).Faded(0.6)),
		glowing(RoleHeadlight, "EyeSocketHeadlights",
			Path("M95 135 L135 125 L140 145 L100 155 Z", white).Faded(0.95),
			Path("M105 140 L130 133 L133 145 L108 150 Z", warmWhite)),
		glowing(RoleTaillight, "HammerheadTaillights",
			Path("M505 150 L545 145 L550 175 L510 180 Z", red).Faded(0.9),
			Line(510, 160, 545, 157, pink, 3)),
		layer(RoleAero, "FrontSplitter",
			Path("M42 200 L130 190 L130 205 L42 215 Z", PaintCarbon)),
		layer(RoleTrim, "DihedralDoorLines",
			stroke("M220 88 Q 250 150, 220 200", p.shadow(), 1.5).Faded(0.5),
			stroke("M380 88 Q 350 150, 380 200", p.shadow(), 1.5).Faded(0.5)),
		layer(RoleAero, "RearDiffuser",
			Path("M470 200 L505 170 L555 200 L555 218 L470 218 Z", PaintCarbon)),
	}
	layers = append(layers, wheelPair(p, 145, 455, 212, 45, 10, false)...)
	return append(layers, layer(RoleTrim, "AeroMirror",
		Ellipse(195, 85, 14, 7, p.body()).Stroked(p.shadow(), 1)))
}

// Classic rear-engine silhouette with a swan-neck wing.
func gt3RSShape(p Palette) []Layer {
	layers := []Layer{
		layer(RoleBody, "ClassicSilhouette",
			Path("M48 185 L65 180 L95 155 L130 130 L175 110 L230 95 L370 95 L430 110 L475 130 L505 155 L535 180 L552 185 L558 200 L558 218 L42 218 L42 200 Z", PaintBody)),
		layer(RoleCabin, "SlopingRoof",
			Path("M200 110 L220 65 L350 65 L410 110 Z", PaintBody)),
		layer(RoleGlass, "Windshield",
			glass(p, "M203 108 L222 67 L290 67 L290 108 Z")),
		layer(RoleGlass, "RearQuarterWindow",
			glass(p, "M295 67 L345 67 L405 108 L295 108 Z")),
		layer(RoleAero, "RearWing",
			Rect(400, 25, 120, 8, 2, PaintCarbon),
			stroke("M415 35 L415 75", p.shadow(), 4),
			stroke("M505 35 L505 75", p.shadow(), 4),
			Path("M395 20 L400 45 L420 45 L415 20 Z", PaintCarbon),
			Path("M500 20 L505 45 L525 45 L520 20 Z", PaintCarbon)),
		glowing(RoleHeadlight, "RoundHeadlight",
			Circle(95, 145, 15, warmWhite).Faded(0.9),
			Circle(95, 145, 10, white),
			Circle(95, 145, 4, amber)),
		glowing(RoleTaillight, "LightBar",
			Rect(420, 95, 80, 12, 2, red).Faded(0.9),
			Line(430, 101, 490, 101, pink, 3)),
		layer(RoleAero, "NACADucts",
			Path("M280 130 L300 130 L295 155 L275 155 Z", dark).Faded(0.6),
			Path("M320 130 L340 130 L345 155 L325 155 Z", dark).Faded(0.6)),
		layer(RoleAero, "FrontSplitter",
			Path("M48 200 L140 195 L140 210 L48 215 Z", PaintCarbon)),
		layer(RoleTrim, "SideGraphic",
			stroke("M75 170 L525 170", p.shadow(), 2).Faded(0.5)),
	}
	layers = append(layers, wheelPair(p, 150, 450, 212, 44, 5, true)...)
	return append(layers, layer(RoleTrim, "AeroMirror",
		Polygon(p.body(), Point{180, 100}, Point{200, 95}, Point{202, 110}, Point{182, 112}).Stroked(p.shadow(), 1)))
}
