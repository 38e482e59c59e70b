package rules

var canonPostprocess = []Rule{
	Generation{
		Models: []string{"1d", "1ds", "5d", "6d", "7d", "eos1d", "g1x"},
		Markers: []Marker{
			{Needles: []string{" iv "}, Suffix: "mark4"},
			{Needles: []string{" iii "}, Suffix: "mark3"},
			{
				Needles: []string{" ii ", " markii ", " mkii ", " mark 2 "},
				Suffix:  "mark2",
				Refine:  &Marker{Needles: []string{" ii n "}, Suffix: "mark2n"},
			},
			{Needles: []string{" i "}, Suffix: "mark1"},
		},
	},
	StripSuffix("is"),
	StripSuffix("hs"),
	Substitute(canonModels),
	StripPrefix("elph"),
	StripPrefix("pro"),
}

// Dahua network cameras are catalogued under their full dh-ipc family codes.
var dahuaPostprocess = []Rule{
	FirstOf{
		ReplacePrefix("ipc", "dhipc"),
		ReplacePrefix("pc", "dhipc"),
		ReplacePrefix("hdb", "dhipchdb"),
		ReplacePrefix("hfw", "dhipchfw"),
		ReplacePrefix("sd", "dhsd"),
	},
}

var leicaPostprocess = []Rule{
	TitlePrefix{
		Prefix: "lux",
		Choices: []Choice{
			{Needle: " d ", Prepend: "d"},
			{Needle: " v ", Prepend: "v"},
			{Needle: " c ", Prepend: "c"},
		},
	},
	TitlePrefix{
		Models:   []string{"240"},
		Choices:  []Choice{{Needle: " p ", Prepend: "mp"}},
		Fallback: "m",
	},
}

// Panasonic listings carry the DMC series marker and colour or region
// letters; every strip is checked independently.
var panasonicPostprocess = []Rule{
	StripPrefix("dmc"),
	StripSuffix("s"),
	StripSuffix("a"),
	StripSuffix("r"),
	StripSuffix("p"),
	StripSuffix("w"),
	StripSuffix("d"),
	StripSuffix("h"),
	StripSuffix("c"),
	StripSuffix("kk"),
	StripSuffix("k"),
}

var ricohPostprocess = []Rule{
	Generation{
		Models: []string{"gr"},
		Markers: []Marker{
			{Needles: []string{" iv "}, Suffix: "digital iv"},
			{Needles: []string{" iii "}, Suffix: "digital iii"},
			{Needles: []string{" ii "}, Suffix: "digital ii"},
			{Needles: []string{" digital ", " 16mp "}, Suffix: "digital"},
		},
	},
}

var sonyPostprocess = []Rule{
	FirstOf{
		StripPrefix("dslr"),
		ReplacePrefix("hx", "dschx"),
		ReplacePrefix("ilca", "a"),
		ReplacePrefix("ilcea", "a"),
		ReplacePrefix("ilce", "a"),
		ReplacePrefix("ice", "a"),
		StripPrefix("mvc"),
		ReplacePrefix("p", "dscp"),
		ReplacePrefix("qx", "dscqx"),
		ReplacePrefix("rx", "dscrx"),
		StripPrefix("slt"),
		ReplacePrefix("tx", "dsctx"),
		ReplacePrefix("w", "dscw"),
	},
	Substitute(sonyModels),
	FirstOf{
		StripSuffix("b"),
		StripSuffix("k"),
		StripSuffix("l"),
		StripSuffix("v"),
		StripSuffix("y"),
	},
	Generation{
		Models:  []string{"a77"},
		Markers: []Marker{{Needles: []string{" ii ", " 2 "}, Suffix: "2"}},
	},
	Generation{
		Prefix: "dscrx100",
		Markers: []Marker{
			{Needles: []string{" ii "}, Models: []string{"dscrx1002", "dscrx100m2"}, Suffix: "2"},
			{
				Needles: []string{" iii "},
				Models:  []string{"dscrx100iii", "dscrx100m3", "dscrx100m3b", "dscrx100miii"},
				Suffix:  "3",
			},
		},
	},
}
