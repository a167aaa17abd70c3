package catalog

// Industry names of the built-in library.
const (
	IndustryHospitality = "hospitality"
	IndustryBakery      = "bakery"
	IndustryButchery    = "butchery"
	IndustryCatering    = "catering"
	IndustryLaundry     = "laundry"
)

func m(title string) MeasureTemplate {
	return MeasureTemplate{Title: title}
}

func ms(title, stop string) MeasureTemplate {
	return MeasureTemplate{Title: title, StopLevel: stop}
}

// STOP level literals used by the built-in catalog. Kept local so the data
// below stays compact; they must match the assessment package constants.
const (
	stopS = "S (Substitution)"
	stopT = "T (Technical)"
	stopP = "P (PPE)"
	stopQ = "Q (Qualification/Training)"
)

// BuiltinLibrary returns the read-only industry template catalog shipped
// with the tool. Callers must not mutate the result; use Library.Merge with
// an external catalog file to extend it.
func BuiltinLibrary() Library {
	return Library{
		IndustryHospitality: {Areas: []Area{
			{Name: "Kitchen", Items: []Item{
				{
					Activity:         "Cooking with pots and kettles",
					Hazard:           "heat, hot liquids, scalds and burns",
					Sources:          []string{"stoves", "kettles", "pots"},
					ExistingControls: []string{"heat protection"},
					Measures: []MeasureTemplate{
						ms("Use pot lids and splash guards", stopT),
						m("Call out 'hot!' when carrying"),
						ms("Heat protection gloves", stopP),
					},
				},
				{
					Activity:         "Pan frying and griddle work",
					Hazard:           "grease splashes, burns, smoke and fumes",
					Sources:          []string{"pans", "griddle plates"},
					ExistingControls: []string{"extraction hood"},
					Measures: []MeasureTemplate{
						ms("Fit splash screens", stopT),
						m("Clean and inspect the hood"),
					},
				},
				{
					Activity:         "Deep frying",
					Hazard:           "grease fire, burns, splashes",
					Sources:          []string{"deep fryers"},
					ExistingControls: []string{"class F extinguisher"},
					Measures: []MeasureTemplate{
						m("Oil change and cleaning schedule"),
						ms("Heat apron and gloves", stopP),
					},
				},
				{
					Activity:         "Opening the combi steamer",
					Hazard:           "steam and hot air scalds on opening",
					Sources:          []string{"combi steamer"},
					ExistingControls: []string{"cool-down period"},
					Measures: []MeasureTemplate{
						m("Open the door a crack first"),
						ms("Heat protection gloves", stopP),
					},
				},
				{
					Activity:         "Knife work",
					Hazard:           "cut and stab wounds",
					Sources:          []string{"knives"},
					ExistingControls: []string{"sharp, maintained knives"},
					Measures: []MeasureTemplate{
						m("Sharpening schedule"),
						ms("Cut-resistant gloves where needed", stopP),
					},
				},
				{
					Activity:         "Slicing machine",
					Hazard:           "cuts from rotating blades",
					Sources:          []string{"slicer"},
					ExistingControls: []string{"blade guard", "emergency stop"},
					Measures: []MeasureTemplate{
						ms("Inspect safety components", stopT),
						m("Authorized operators only"),
					},
				},
				{
					Activity:         "Meat grinder and vegetable cutter",
					Hazard:           "drawing-in, cuts",
					Sources:          []string{"grinder", "vegetable cutter"},
					ExistingControls: []string{"pusher tool"},
					Measures: []MeasureTemplate{
						m("Always use the pusher"),
						ms("Emergency-stop training", stopQ),
					},
				},
				{
					Activity:         "Tilting kettle and bratt pan",
					Hazard:           "scalds, crushing while tilting",
					Sources:          []string{"tilting kettle"},
					ExistingControls: []string{"heat protection"},
					Measures: []MeasureTemplate{
						m("Standardize the tilting procedure"),
						ms("Two-hand operation training", stopQ),
					},
				},
				{
					Activity:         "Dishwashing area",
					Hazard:           "hot water, steam, chemicals and slips",
					Sources:          []string{"dishwasher", "rinse aid"},
					ExistingControls: []string{"hand and eye protection"},
					Measures: []MeasureTemplate{
						m("Wipe-up-immediately rule"),
						ms("Anti-slip mats", stopT),
					},
				},
				{
					Activity:         "Cleaning chemicals",
					Hazard:           "corrosive and irritant effects, chlorine gas from mixing",
					Sources:          []string{"cleaners", "disinfectants"},
					ExistingControls: []string{"dosing systems"},
					Measures: []MeasureTemplate{
						ms("Pre-dosed cartridges", stopS),
						m("Post operating instructions"),
					},
				},
				{
					Activity:         "Gas appliances",
					Hazard:           "gas leak, carbon monoxide, fire and explosion",
					Sources:          []string{"gas stoves", "gas lines"},
					ExistingControls: []string{"leak testing"},
					Measures: []MeasureTemplate{
						ms("Gas detectors", stopT),
						m("Leak check before start-up"),
					},
				},
				{
					Activity:         "Goods receipt with pallet truck",
					Hazard:           "crushing, manual handling, traffic routes",
					Sources:          []string{"roll containers", "pallet truck"},
					ExistingControls: []string{"lifting aids"},
					Measures: []MeasureTemplate{
						m("Mark traffic routes"),
						ms("Manual handling briefing", stopQ),
					},
				},
				{
					Activity:         "Disposing of used oil and waste",
					Hazard:           "burns from hot oil, cuts and infection",
					Sources:          []string{"used oil", "waste bags"},
					ExistingControls: []string{"cool-down before handling"},
					Measures: []MeasureTemplate{
						ms("Lidded transport containers", stopT),
						ms("Mandatory hand protection", stopP),
					},
				},
				{
					Activity:         "Walk-in coolers and freezers",
					Hazard:           "cold, slips, entrapment",
					Sources:          []string{"cold room", "freezer"},
					ExistingControls: []string{"cold protection clothing"},
					Measures: []MeasureTemplate{
						ms("Test emergency door release", stopT),
						m("Limit time inside"),
					},
				},
				{
					Activity:         "Allergen management",
					Hazard:           "cross-contamination, allergens",
					Sources:          []string{"ingredient changes"},
					ExistingControls: []string{"labelling"},
					Measures: []MeasureTemplate{
						m("Clean/unclean workflow separation"),
						ms("Food information briefing", stopQ),
					},
				},
				{
					Activity:         "Small electrical appliances",
					Hazard:           "electric shock, fire risk",
					Sources:          []string{"mixers", "immersion blenders"},
					ExistingControls: []string{"visual inspection"},
					Measures: []MeasureTemplate{
						m("Portable appliance test interval"),
					},
				},
			}},
			{Name: "Housekeeping", Items: []Item{
				{
					Activity:         "Bed making and room turnover",
					Hazard:           "back strain, awkward postures",
					Sources:          []string{"beds", "linen carts"},
					ExistingControls: []string{"height-adjustable carts"},
					Measures: []MeasureTemplate{
						ms("Ergonomics briefing", stopQ),
						m("Rotate heavy tasks"),
					},
				},
				{
					Activity:         "Bathroom cleaning",
					Hazard:           "cleaning chemicals, slips, infection",
					Sources:          []string{"sanitary cleaners"},
					ExistingControls: []string{"gloves"},
					Measures: []MeasureTemplate{
						ms("Milder surfactant products", stopS),
						m("Ventilate while cleaning"),
					},
				},
				{
					Activity:         "Handling used linen",
					Hazard:           "needlestick, infection, dust",
					Sources:          []string{"used linen", "waste"},
					ExistingControls: []string{"no-compression rule"},
					Measures: []MeasureTemplate{
						ms("Puncture-resistant gloves", stopP),
						m("Carry linen away from the body"),
					},
				},
			}},
			{Name: "Service", Items: []Item{
				{
					Activity:         "Carrying plates and trays",
					Hazard:           "burns, collisions, slips",
					Sources:          []string{"hot plates", "narrow walkways"},
					ExistingControls: []string{"service training"},
					Measures: []MeasureTemplate{
						m("Keep service routes clear"),
						ms("Non-slip footwear", stopP),
					},
				},
				{
					Activity:         "Opening bottles and glass handling",
					Hazard:           "cuts from glass breakage",
					Sources:          []string{"glassware", "bottles"},
					ExistingControls: []string{"broken-glass bin"},
					Measures: []MeasureTemplate{
						m("Never catch falling glass"),
					},
				},
			}},
		}},
		IndustryBakery: {Areas: []Area{
			{Name: "Production", Items: []Item{
				{
					Activity:         "Dough mixing and kneading",
					Hazard:           "drawing-in by rotating hooks, flour dust",
					Sources:          []string{"spiral mixers"},
					ExistingControls: []string{"bowl guard"},
					Measures: []MeasureTemplate{
						ms("Interlocked guards", stopT),
						ms("Dust extraction at the mixer", stopT),
					},
				},
				{
					Activity:         "Oven work",
					Hazard:           "burns, heat stress",
					Sources:          []string{"deck ovens", "rack ovens"},
					ExistingControls: []string{"peels and racks"},
					Measures: []MeasureTemplate{
						ms("Heat protection gloves", stopP),
						m("Drinking water provision"),
					},
				},
				{
					Activity:         "Dough dividing and moulding",
					Hazard:           "crushing and shearing points",
					Sources:          []string{"dividers", "moulders"},
					ExistingControls: []string{"fixed guards"},
					Measures: []MeasureTemplate{
						ms("Guard inspection schedule", stopT),
					},
				},
				{
					Activity:         "Flour handling",
					Hazard:           "flour dust, baker's asthma",
					Sources:          []string{"flour silos", "bagged flour"},
					ExistingControls: []string{"low-dust technique"},
					Measures: []MeasureTemplate{
						ms("Divided-lid flour bins", stopT),
						ms("Respiratory protection for silo work", stopP),
						ms("Dust awareness briefing", stopQ),
					},
				},
			}},
			{Name: "Sales", Items: []Item{
				{
					Activity:         "Bread slicing machine",
					Hazard:           "cuts from the blade",
					Sources:          []string{"bread slicer"},
					ExistingControls: []string{"hood guard"},
					Measures: []MeasureTemplate{
						m("Authorized operators only"),
					},
				},
			}},
		}},
		IndustryButchery: {Areas: []Area{
			{Name: "Cutting", Items: []Item{
				{
					Activity:         "Boning and cutting",
					Hazard:           "stab and cut wounds",
					Sources:          []string{"boning knives"},
					ExistingControls: []string{"chain mail apron"},
					Measures: []MeasureTemplate{
						ms("Cut-resistant gloves", stopP),
						m("Cut away from the body"),
					},
				},
				{
					Activity:         "Band saw work",
					Hazard:           "severe cuts, amputation",
					Sources:          []string{"band saw"},
					ExistingControls: []string{"blade guard adjustment"},
					Measures: []MeasureTemplate{
						ms("Push block for small pieces", stopT),
						ms("Band saw authorization training", stopQ),
					},
				},
				{
					Activity:         "Mincing and cutter work",
					Hazard:           "drawing-in, cuts from bowl blades",
					Sources:          []string{"mincer", "bowl cutter"},
					ExistingControls: []string{"interlocked lid"},
					Measures: []MeasureTemplate{
						ms("Interlock function test", stopT),
					},
				},
			}},
			{Name: "Cold Storage", Items: []Item{
				{
					Activity:         "Work in chilled rooms",
					Hazard:           "cold, slips on wet floors",
					Sources:          []string{"chill rooms"},
					ExistingControls: []string{"cold protection clothing"},
					Measures: []MeasureTemplate{
						m("Limit continuous cold exposure"),
						ms("Anti-slip flooring", stopT),
					},
				},
			}},
		}},
		IndustryCatering: {Areas: []Area{
			{Name: "Central Kitchen", Items: []Item{
				{
					Activity:         "Bulk cooking in kettles",
					Hazard:           "scalds, steam, manual handling",
					Sources:          []string{"bulk kettles", "GN containers"},
					ExistingControls: []string{"lifting aids"},
					Measures: []MeasureTemplate{
						m("Two-person lifts for full containers"),
						ms("Heat protection gloves", stopP),
					},
				},
				{
					Activity:         "Regeneration and hot holding",
					Hazard:           "burns, hot surfaces",
					Sources:          []string{"bain-marie", "hot cabinets"},
					ExistingControls: []string{"temperature control"},
					Measures: []MeasureTemplate{
						m("Mark hot surfaces"),
					},
				},
			}},
			{Name: "Transport", Items: []Item{
				{
					Activity:         "Loading food transport trolleys",
					Hazard:           "crushing, ramps and vehicle tail lifts",
					Sources:          []string{"transport trolleys", "tail lift"},
					ExistingControls: []string{"trolley brakes"},
					Measures: []MeasureTemplate{
						ms("Tail lift operation briefing", stopQ),
						m("Secure trolleys during transit"),
					},
				},
			}},
		}},
		IndustryLaundry: {Areas: []Area{
			{Name: "Wash House", Items: []Item{
				{
					Activity:         "Sorting soiled textiles",
					Hazard:           "infection, sharps in linen, dust",
					Sources:          []string{"soiled linen"},
					ExistingControls: []string{"vaccination offer"},
					Measures: []MeasureTemplate{
						ms("Puncture-resistant gloves", stopP),
						m("Clean/unclean side separation"),
					},
				},
				{
					Activity:         "Washer-extractor operation",
					Hazard:           "chemicals, hot water, drawing-in",
					Sources:          []string{"washer-extractors", "detergent dosing"},
					ExistingControls: []string{"closed dosing system"},
					Measures: []MeasureTemplate{
						ms("Automatic dosing", stopT),
						ms("Eye protection when decanting", stopP),
					},
				},
			}},
			{Name: "Finishing", Items: []Item{
				{
					Activity:         "Ironer and press work",
					Hazard:           "burns, crushing at the feed",
					Sources:          []string{"flatwork ironer", "presses"},
					ExistingControls: []string{"finger guard"},
					Measures: []MeasureTemplate{
						ms("Finger guard function test", stopT),
						m("Never reach after trapped items"),
					},
				},
				{
					Activity:         "Heat and steam exposure",
					Hazard:           "heat stress, scalds from steam lines",
					Sources:          []string{"steam systems"},
					ExistingControls: []string{"insulated lines"},
					Measures: []MeasureTemplate{
						m("Ventilation and rest breaks"),
					},
				},
			}},
		}},
	}
}
