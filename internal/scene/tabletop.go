package scene

// Tabletop is the built-in still life: a cutting board with meat chunks, a
// knife and a marinade cup on an onyx countertop. It is the fallback when no
// scene file is given and mirrors assets/scenes/tabletop.yaml.
func Tabletop() *Document {
	color := func(r, g, b, a float32) *[4]float32 { return &[4]float32{r, g, b, a} }
	uv := func(u, v float32) *[2]float32 { return &[2]float32{u, v} }

	meat := func(scale, rotate, position [3]float32) DrawItem {
		return DrawItem{
			Mesh: "pyramid", Scale: scale, Rotate: rotate, Position: position,
			Texture: "meat", UVScale: uv(1.5, 1.2), Material: "clay",
		}
	}

	return &Document{
		Name:       "tabletop",
		ClearColor: [4]float32{0.1, 0.1, 0.1, 1},
		Textures: []TextureDef{
			{Path: "textures/onyx.jpg", Tag: "onyx"},
			{Path: "textures/ice.jpg", Tag: "ice"},
			{Path: "textures/wood.jpg", Tag: "wood"},
			{Path: "textures/ground.jpg", Tag: "ground"},
			{Path: "textures/concrete.jpg", Tag: "concrete"},
			{Path: "textures/metal.jpg", Tag: "metal"},
			{Path: "textures/wood2.jpg", Tag: "wood2"},
			{Path: "textures/meat.jpg", Tag: "meat"},
		},
		Lights: LightsDef{
			Directional: &DirectionalDef{
				Direction: [3]float32{-0.05, -0.3, -0.1},
				Ambient:   [3]float32{0.05, 0.05, 0.05},
				Diffuse:   [3]float32{0.6, 0.6, 0.6},
				Specular:  [3]float32{0, 0, 0},
			},
			Points: []PointDef{
				{Position: [3]float32{-4, 8, 0}, Ambient: [3]float32{0.05, 0.05, 0.05}, Diffuse: [3]float32{0.3, 0.3, 0.3}, Specular: [3]float32{0.1, 0.1, 0.1}},
				{Position: [3]float32{4, 8, 0}, Ambient: [3]float32{0.05, 0.05, 0.05}, Diffuse: [3]float32{0.3, 0.3, 0.3}, Specular: [3]float32{0.1, 0.1, 0.1}},
				{Position: [3]float32{3.8, 5.5, 4}, Ambient: [3]float32{0.06, 0.03, 0}, Diffuse: [3]float32{0.95, 0.5, 0.15}, Specular: [3]float32{1, 0.9, 0.8}},
				{Position: [3]float32{3.8, 3.5, 4}, Ambient: [3]float32{0.05, 0.05, 0.05}, Diffuse: [3]float32{0.2, 0.2, 0.2}, Specular: [3]float32{0.8, 0.8, 0.8}},
				{Position: [3]float32{-3.2, 6, -4}, Ambient: [3]float32{0.05, 0.05, 0.05}, Diffuse: [3]float32{0.9, 0.9, 0.9}, Specular: [3]float32{0.1, 0.1, 0.1}},
			},
			Spot: &SpotDef{
				Position:       [3]float32{0, 9, 3},
				Direction:      [3]float32{0, -1, -0.3},
				Ambient:        [3]float32{0.8, 0.8, 0.8},
				Diffuse:        [3]float32{1, 1, 1},
				Specular:       [3]float32{0.7, 0.7, 0.7},
				Constant:       1,
				Linear:         0.09,
				Quadratic:      0.032,
				CutOffDeg:      42.5,
				OuterCutOffDeg: 48,
			},
		},
		Draws: []DrawItem{
			// countertop
			{Mesh: "plane", Scale: [3]float32{24, 1, 14}, Position: [3]float32{0, 0, 0},
				Texture: "onyx", UVScale: uv(3, 2), Material: "tile"},
			// cutting board, sits on the plane: y = height/2
			{Mesh: "box", Scale: [3]float32{8.6, 0.25, 5}, Position: [3]float32{-0.5, 0.125, 0.8},
				Texture: "wood", UVScale: uv(1.6, 1), Material: "wood"},
			// knife blade
			{Mesh: "pyramid", Scale: [3]float32{0.05, 5, 0.35}, Rotate: [3]float32{-10, 0, 90},
				Position: [3]float32{1.6, 0.33, 1.1},
				Texture:  "metal", UVScale: uv(2, 1), Material: "tile"},
			// knife handle
			{Mesh: "tapered_cylinder", Scale: [3]float32{0.2, 1.1, 0.2}, Rotate: [3]float32{-10, 0, 90},
				Position: [3]float32{5.15, 0.3, 1.65},
				Texture:  "wood2", UVScale: uv(1, 1), Material: "wood"},
			// meat chunks on the board
			meat([3]float32{1.6, 1.1, 1.2}, [3]float32{-6, 18, 4}, [3]float32{-2.25, 2, 0.6}),
			meat([3]float32{1.2, 0.9, 1}, [3]float32{8, -22, -10}, [3]float32{-1.95, 1.45, 1.25}),
			meat([3]float32{2.75, 2.75, 2.75}, [3]float32{-4, 10, 2}, [3]float32{-2.3, 1.45, 0.7}),
			meat([3]float32{2.1, 0.85, 1.95}, [3]float32{6, 28, -8}, [3]float32{-2.95, 0.6, 0.35}),
			meat([3]float32{1.95, 0.75, 1.9}, [3]float32{-38, -48, 12}, [3]float32{-1.7, 1.1, 0.35}),
			// marinade fill inside the cup
			{Mesh: "cylinder", Scale: [3]float32{1, 2.65, 1}, Rotate: [3]float32{180, 0, 0},
				Position: [3]float32{5.2, 2.75, -1},
				Color:    color(0.3, 0.12, 0.08, 1), Material: "tile"},
			// pork pieces floating in the marinade
			meat([3]float32{0.34, 0.26, 0.28}, [3]float32{12, 18, -8}, [3]float32{5.18, 2.75, -1.06}),
			meat([3]float32{0.28, 0.24, 0.26}, [3]float32{-6, 32, 10}, [3]float32{5.32, 2.75, -0.88}),
			meat([3]float32{0.54, 0.5, 0.52}, [3]float32{8, -20, -12}, [3]float32{5.06, 2.75, -1.14}),
			meat([3]float32{0.35, 0.27, 0.29}, [3]float32{12, 18, -8}, [3]float32{5.18, 2.75, -1.36}),
			meat([3]float32{0.48, 0.44, 0.46}, [3]float32{-6, 32, 10}, [3]float32{5.32, 2.75, -0.68}),
			meat([3]float32{0.34, 0.3, 0.32}, [3]float32{8, -20, -12}, [3]float32{5.06, 2.75, -1.84}),
			// cup wall, open at both ends
			{Mesh: "cylinder", Scale: [3]float32{1.05, 3, 1.05}, Rotate: [3]float32{180, 0, 0},
				Position: [3]float32{5.2, 3, -1},
				Color:    color(1, 1, 1, 0.35), Material: "glass",
				Caps:     &CapsDef{Sides: true}},
			// coaster under the cup
			{Mesh: "cylinder", Scale: [3]float32{1.1, 0.1, 1.1}, Position: [3]float32{6.8, 0.05, 0.7},
				Color: color(1, 1, 1, 0.35), Material: "plasticClear"},
			// skewers resting on the board
			{Mesh: "box", Scale: [3]float32{1.8, 0.05, 0.02}, Rotate: [3]float32{0, 9.5, 2},
				Position: [3]float32{1.46, 0.3, 1.855},
				Texture:  "metal", UVScale: uv(2, 1), Material: "glass"},
			{Mesh: "box", Scale: [3]float32{1.8, 0.05, 0.02}, Rotate: [3]float32{0, 12, 2},
				Position: [3]float32{1.48, 0.3, 1.915},
				Texture:  "metal", UVScale: uv(2, 1), Material: "glass"},
		},
	}
}
