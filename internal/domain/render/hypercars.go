package render

// Grand-tourer hypercar with the sweeping C-line.
func chironShape(p Palette) []Layer {
	layers := []Layer{
		layer(RoleBody, "SleekBody",
			Path("M45 180 L65 175 L95 140 L130 105 L180 85 L250 75 L350 75 L420 85 L470 105 L510 140 L540 175 L555 180 L560 195 L560 215 L40 215 L40 195 Z", PaintBody)),
		layer(RoleTrim, "CLine",
			Path("M280 78 C 240 78, 200 130, 190 190 L 200 190 C 210 140, 245 95, 280 95 C 315 95, 350 140, 360 190 L 370 190 C 360 130, 320 78, 280 78", p.shadow()).Faded(0.6)),
		layer(RoleCabin, "Roof",
			Path("M195 85 L220 50 L380 50 L405 85 Z", PaintBody)),
		layer(RoleGlass, "Windshield",
			glass(p, "M198 83 L222 52 L290 52 L290 83 Z")),
		layer(RoleGlass, "SideWindow",
			glass(p, "M295 52 L378 52 L402 83 L295 83 Z")),
		layer(RoleAero, "HorseshoeGrille",
			Path("M55 170 Q 60 145, 85 145 L 85 195 L 60 195 Q 55 195, 55 185 Z", dark).Stroked(PaintChrome, 2)),
		glowing(RoleHeadlight, "QuadHeadlights",
			Rect(90, 125, 35, 8, 2, white).Faded(0.95),
			Line(90, 136, 125, 136, white, 2).Faded(0.8)),
		glowing(RoleTaillight, "LightBlade",
			Rect(520, 155, 30, 30, 3, red).Faded(0.9),
			Line(525, 170, 545, 170, pink, 3)),
		layer(RoleAero, "SideIntake",
			Path("M280 140 L380 140 L390 170 L280 170 Z", dark).Faded(0.8)),
		layer(RoleTrim, "MetallicOverlay",
			stroke("M45 180 L65 175 L95 140 L130 105 L180 85 L250 75 L350 75 L420 85 L470 105 L510 140 L540 175 L555 180", sheenLine, 1)),
	}
	layers = append(layers, wheelPair(p, 145, 455, 210, 44, 7, false)...)
	return append(layers, layer(RoleTrim, "SideMirror",
		Ellipse(185, 80, 15, 8, p.body()).Stroked(p.shadow(), 1)))
}

// Road-going F1 car: shark fin, roof scoop and T-wing.
func amgOneShape(p Palette) []Layer {
	layers := []Layer{
		layer(RoleBody, "LowBody",
			Path("M35 188 L50 182 L80 150 L120 115 L175 92 L250 80 L350 80 L425 92 L480 115 L520 150 L550 182 L565 188 L570 202 L570 218 L30 218 L30 202 Z", PaintBody)),
		layer(RoleAero, "SharkFin",
			Path("M350 80 L360 30 L400 80 Z", PaintBody)),
		layer(RoleCabin, "RaisedCockpit",
			Path("M200 92 L225 52 L380 52 L405 92 Z", PaintBody)),
		layer(RoleGlass, "Windshield",
			glass(p, "M203 90 L227 54 L295 54 L295 90 Z")),
		layer(RoleGlass, "SideWindow",
			glass(p, "M300 54 L375 54 L400 90 L300 90 Z")),
		layer(RoleAero, "RoofScoop",
			Path("M290 54 L310 54 L305 35 L295 35 Z", dark)),
		glowing(RoleHeadlight, "ArrowHeadlights",
			Path("M90 140 L130 130 L125 155 L85 160 Z", white).Faded(0.95),
			Path("M95 145 L120 138 L117 150 L92 155 Z", warmWhite)),
		glowing(RoleTaillight, "LEDStrips",
			Rect(500, 130, 50, 5, 2, red).Faded(0.9),
			Rect(510, 140, 40, 5, 2, red).Faded(0.9),
			Rect(520, 150, 30, 5, 2, red).Faded(0.9)),
		layer(RoleAero, "SidePods",
			Path("M220 115 L260 115 L250 160 L210 160 Z", dark).Faded(0.7),
			Path("M340 115 L380 115 L390 160 L350 160 Z", dark).Faded(0.7)),
		layer(RoleAero, "RearDiffuser",
			Path("M450 195 L500 165 L560 195 L560 218 L450 218 Z", PaintCarbon)),
		layer(RoleAero, "FrontSplitter",
			Path("M35 200 L150 188 L150 205 L35 215 Z", PaintCarbon)),
		layer(RoleAero, "TWing",
			Path("M470 40 L530 40 L530 45 L470 45 Z", PaintCarbon),
			stroke("M500 45 L500 80", p.shadow(), 3)),
	}
	layers = append(layers, wheelPair(p, 145, 455, 212, 45, 10, false)...)
	return append(layers, layer(RoleTrim, "AeroMirror",
		Path("M180 88 Q 192 78, 205 85 L 203 95 Q 190 92, 180 95 Z", p.body()).Stroked(p.shadow(), 1)))
}

// Extreme ground-effect car: one fighter canopy, venturi tunnels, LMP wing.
func valkyrieShape(p Palette) []Layer {
	layers := []Layer{
		layer(RoleBody, "TunnelBody",
			Path("M40 185 L55 175 L85 140 L135 105 L200 88 L280 82 L380 82 L450 88 L515 105 L545 140 L555 175 L565 185 L568 200 L568 218 L32 218 L32 200 Z", PaintBody)),
		layer(RoleCabin, "CentralSpine",
			Path("M230 88 L250 50 L350 50 L370 88 Z", PaintBody)),
		layer(RoleGlass, "FighterCanopy",
			glass(p, "M235 86 Q 252 52, 300 52 Q 348 52, 365 86 Z")),
		layer(RoleAero, "VenturiTunnels",
			Path("M100 165 Q 150 200, 200 200 L 200 218 L 50 218 L 50 200 Q 80 195, 100 165", black).Faded(0.9),
			Path("M500 165 Q 450 200, 400 200 L 400 218 L 550 218 L 550 200 Q 520 195, 500 165", black).Faded(0.9)),
		glowing(RoleHeadlight, "BladeHeadlight",
			Path("M85 125 L125 118 L120 145 L80 148 Z", white).Faded(0.95)),
		glowing(RoleTaillight, "ContinuousTaillight",
			Rect(405, 95, 100, 8, 2, red).Faded(0.9),
			Line(415, 99, 495, 99, pink, 2)),
		layer(RoleBody, "FrontFenders",
			Path("M120 140 L180 120 L175 170 L115 180 Z", PaintBody),
			Path("M480 140 L420 120 L425 170 L485 180 Z", PaintBody)),
		layer(RoleAero, "RearWing",
			Path("M370 20 L530 20 L530 32 L370 32 Z", PaintCarbon),
			stroke("M390 32 L395 85", p.shadow(), 5),
			stroke("M505 32 L500 85", p.shadow(), 5)),
	}
	layers = append(layers, wheelPair(p, 155, 445, 212, 46, 5, true)...)
	return append(layers, layer(RoleTrim, "TinyMirror",
		Ellipse(215, 82, 10, 5, p.body()).Stroked(p.shadow(), 1)))
}

// Track hypercar with a triplex wing and top-exit exhaust.
func jeskoShape(p Palette) []Layer {
	layers := []Layer{
		layer(RoleBody, "AeroBody",
			Path("M38 185 L55 178 L88 145 L135 108 L200 88 L280 78 L380 78 L445 88 L510 108 L545 145 L558 178 L565 185 L570 200 L570 218 L32 218 L32 200 Z", PaintBody)),
		layer(RoleCabin, "HelixRoof",
			Path("M210 88 L235 48 L365 48 L390 88 Z", PaintBody)),
		layer(RoleGlass, "Windshield",
			glass(p, "M213 86 L237 50 L295 50 L295 86 Z")),
		layer(RoleGlass, "SideWindow",
			glass(p, "M300 50 L362 50 L387 86 L300 86 Z")),
		layer(RoleAero, "FrontIntake",
			Path("M55 170 L100 145 L115 175 L65 190 Z", dark).Faded(0.9)),
		glowing(RoleHeadlight, "GhostHeadlights",
			Ellipse(105, 132, 18, 8, white).Faded(0.95),
			Ellipse(105, 132, 10, 5, warmWhite)),
		glowing(RoleTaillight, "WraparoundTaillight",
			Path("M495 110 Q 540 110, 555 160 L 540 165 Q 528 125, 495 125 Z", red).Faded(0.9)),
		layer(RoleAero, "TriplexWing",
			Path("M360 15 L540 15 L540 25 L360 25 Z", PaintCarbon),
			Path("M370 30 L530 30 L530 38 L370 38 Z", PaintCarbon),
			Path("M380 43 L520 43 L520 50 L380 50 Z", PaintCarbon),
			stroke("M390 50 L395 85", p.shadow(), 6),
			stroke("M505 50 L500 85", p.shadow(), 6),
			Path("M355 10 L365 55 L385 55 L370 10 Z", PaintCarbon),
			Path("M535 10 L530 55 L510 55 L520 10 Z", PaintCarbon)),
		layer(RoleTrim, "TopExhaust",
			Circle(460, 78, 12, dark),
			Circle(460, 78, 8, Solid("#2a2a2a"))),
		layer(RoleAero, "SideOutlet",
			Path("M350 115 L400 115 L410 155 L360 155 Z", dark).Faded(0.6)),
		layer(RoleAero, "FrontSplitter",
			Path("M38 200 L150 188 L155 205 L38 215 Z", PaintCarbon)),
	}
	layers = append(layers, wheelPair(p, 150, 450, 212, 46, 5, true)...)
	return append(layers,
		layer(RoleTrim, "DoorHingeLines",
			stroke("M240 88 Q 280 130, 240 195", p.shadow(), 1.5).Faded(0.4),
			stroke("M360 88 Q 320 130, 360 195", p.shadow(), 1.5).Faded(0.4)),
		layer(RoleTrim, "StalkMirror",
			Path("M195 85 L210 70 L225 75 L215 92 Z", p.body()).Stroked(p.shadow(), 1)),
	)
}
