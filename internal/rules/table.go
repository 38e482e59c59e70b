package rules

// table holds the rule entry of every brand that needs one. Brands missing
// from the table resolve with the zero Entry.
var table = map[string]Entry{
	"aiptek": {
		Prefixes:   NewSet("dv"),
		Exceptions: NewSet("3d"),
	},
	"argus": {
		Prefixes: NewSet("dc"),
	},
	"apple": {
		Prefixes: NewSet("iphone", "quicktake"),
	},
	"canon": {
		Prefixes: NewSet("a", "bg", "elph", "hf", "ixus", "ixy", "pro", "sd", "sx"),
		Suffixes: NewSet("c", "d", "ds", "dx", "x"),
		Models:   NewSet("ixusi", "ixusii", "xs", "xsi", "xt", "xti"),
		Exceptions: NewSet(
			"100v", "1280x", "130ft", "2000s", "3color", "3x", "40m", "4608x", "4colors", "4x",
			"50x", "5260b009", "5x", "6colors", "70db", "70dkis", "70dpk", "70dsk", "8160b001",
			"8231b005", "8595b005", "8x", "9126b003", "9156b001", "d700", "ew73b", "g151428",
			"gfb064", "k47",
		),
		Equivalences: map[string]string{
			"600db": "600d", "600dk": "600d", "600dtk": "600d", "a34000": "a3400",
			"eos1d mark3": "1d mark3", "eos1dc": "1dc", "eos1dx": "1dx", "eos40d": "40d",
			"eos7d": "7d", "g1xb": "g1x", "g1xc": "g1x", "s110bk": "s110", "s120bk": "s120",
			"s200bk": "s200", "sx170isbk": "sx170", "sx400isbk": "sx400", "sx400isr": "sx400",
			"sx600hsbk": "sx600", "sx700hsbk": "sx700", "sx700hsr": "sx700",
		},
		Postprocess: canonPostprocess,
	},
	"casio": {
		Prefixes:   NewSet("ex", "qv"),
		Models:     NewSet("tryx"),
		Exceptions: NewSet("2colors", "3x", "fc150", "l00ks", "w0w"),
		Equivalences: map[string]string{
			"exh10bk": "exh10", "exh30bk": "exh30", "exs10a": "exs10", "exs5pe": "exs5",
			"exs770rd": "exs770", "extr15w": "extr15", "exz80a": "exz80", "tr350": "extr350",
			"tr700": "extr700", "tryx": "extr100", "zr700": "exzr700",
		},
	},
	"coleman": {
		Exceptions: NewSet("xtreme2", "xtreme3"),
		Equivalences: map[string]string{
			"2v7wpo": "2v7wp", "2v7wpp": "2v7wp",
		},
	},
	"contour": {
		Prefixes: NewSet("roam"),
	},
	"dahua": {
		Exceptions: NewSet(
			"1.3m", "1.3mpl", "100m", "150m", "18x", "2048x1536", "20m", "20x", "30x", "3m",
			"3x", "50m", "700tvl", "h.246", "h.264", "h264", "ik10", "ip66", "ir100m",
			"onvif2.0", "p2p", "rs485",
		),
		Postprocess: dahuaPostprocess,
	},
	"epson": {
		Prefixes: NewSet("r", "rd"),
	},
	"fujifilm": {
		Prefixes:   NewSet("ax", "ds", "hs", "instax", "jx", "mx", "quicksnap", "x", "xpro", "z"),
		Suffixes:   NewSet("exr", "fd"),
		Models:     NewSet("1300", "2300", "2400", "2600", "2650", "2800", "3800", "4700", "4900"),
		Exceptions: NewSet("12x", "2.7in", "3d", "30x", "5in1", "5x", "casioexg1", "f550"),
		Equivalences: map[string]string{
			"fxjx500pink": "jx500", "jz250black": "jz250",
		},
	},
	"garmin": {
		Suffixes: NewSet("elite"),
		Models:   NewSet("virb", "virbelite"),
	},
	"ge": {
		Suffixes: NewSet("w"),
		Equivalences: map[string]string{
			"c1233bk": "c1233", "c1440w": "c1440", "e1680wbk": "e1680w", "x2600w": "x2600",
			"x500bk": "x500",
		},
	},
	"gopro": {
		Prefixes:   NewSet("hero"),
		Suffixes:   NewSet("+"),
		Exceptions: NewSet("30m", "3d", "45m", "5m", "h3", "st29"),
	},
	"hasselblad": {
		Prefixes: NewSet("cfv"),
		Suffixes: NewSet("40", "50"),
		Models:   NewSet("lunar", "stellar"),
	},
	"hikvision": {
		Prefixes: NewSet("ds"),
		Exceptions: NewSet(
			"100m", "10m", "12v", "20m", "20x", "30m", "32g", "50m", "960p", "h.246", "h.264",
			"h.624", "hikvision1080p", "ip65", "ip66", "ir100m", "ir30m", "m14", "no.1", "rj45",
			"rs485",
		),
		Equivalences: map[string]string{
			"camerads2cd2032i": "ds2cd2032i", "chinads2cd2612fis": "ds2cd2612fis",
			"nds2cd2612fis": "ds2cd2612fis", "poeds2cd2112i": "ds2cd2112i",
		},
	},
	"howell": {
		Prefixes:   NewSet("take"),
		Exceptions: NewSet("splash2"),
		Equivalences: map[string]string{
			"dc5r": "dc5", "take1hd": "take1", "wp10y": "wp10",
		},
	},
	"hp": {
		Prefixes: NewSet("r"),
		Models: NewSet(
			"215", "315", "318", "320", "435", "618", "635", "720", "735", "812", "850", "935",
			"945",
		),
		Exceptions: NewSet("8x"),
		Equivalences: map[string]string{
			"r6074": "r607",
		},
	},
	"intova": {
		Prefixes: NewSet("cp", "ic"),
	},
	"kodak": {
		Prefixes:   NewSet("cx", "dc", "dcs", "dx", "kv", "m"),
		Exceptions: NewSet("10x", "3x", "7c55", "kodakc182bluecolor", "mpeg4", "v2.21"),
		Equivalences: map[string]string{
			"fz41bk": "fz41",
		},
	},
	"leica": {
		Prefixes:   NewSet("digilux", "dlux", "lux", "vlux", "x"),
		Suffixes:   NewSet("p"),
		Models:     NewSet("112", "114", "240", "701", "9", "xvario"),
		Exceptions: NewSet("0.68x"),
		Equivalences: map[string]string{
			"9p": "m9p", "d6": "dlux6", "dluxd3": "dlux3", "typ240": "m240",
		},
		Postprocess: leicaPostprocess,
	},
	"lg": {
		Exceptions: NewSet("32in", "3d", "pn4500"),
	},
	"minolta": {
		Prefixes:   NewSet("x", "xg"),
		Suffixes:   NewSet("si"),
		Models:     NewSet("5", "7", "blowout"),
		Exceptions: NewSet("3x", "vc7d"),
	},
	"minox": {
		Models: NewSet("dcc", "dsc", "minoctar"),
	},
	"motorola": {
		Prefixes: NewSet("phone"),
	},
	"mustek": {
		Prefixes: NewSet("mdc"),
	},
	"nikon": {
		Prefixes: NewSet("aw", "d", "l", "s", "tc", "v"),
		Models: NewSet(
			"25462", "25480", "26286", "2000", "2100", "2200", "2500", "3100", "3200", "3500",
			"3700", "4200", "4300", "4500", "4600", "4800", "5000", "5100", "5400", "5600",
			"5700", "600", "700", "7600", "775", "7900", "800", "8400", "8700", "8800", "885",
			"950", "990", "995", "a", "df",
		),
		Exceptions: NewSet(
			"10x", "130ft", "2colors", "2pcs", "30x", "3colors", "3d", "3x", "40m", "42x", "4g",
			"4x", "6x", "7x", "k164318", "m130ft", "nikon1", "s2868", "s3090", "s800bk",
		),
		Equivalences: map[string]string{
			"1j2": "j2", "25462": "d3000", "25480": "d800", "26286": "p7100", "d1oo": "d100",
			"d32oo": "d3200", "d7100lk18": "d7100", "e3200": "3200", "e5400": "5400",
			"e5600": "5600", "e8400": "8400", "e995": "995", "l610b": "l610",
			"s3600sl": "s3600", "s6600wh": "s6600", "so1": "s01", "so2": "s02",
		},
	},
	"olympus": {
		Prefixes: NewSet(
			"c", "d", "e", "em", "ep", "epm", "f", "fe", "sh", "sp", "sz", "t", "tg", "vg",
			"vh", "vr", "x", "xz",
		),
		Suffixes: NewSet("sw", "uz"),
		Models: NewSet(
			"105", "300", "400", "410", "500", "600", "710", "730", "740", "750", "760", "780",
			"800", "810", "820", "830", "850", "1000", "1010", "1040", "1200", "3000", "5010",
			"6000", "6010", "6020", "7000", "7010", "7030", "7040", "8000", "8010", "9000",
			"9010",
		),
		Exceptions: NewSet(
			"10.7x", "10x", "1134shot", "15x", "1m", "20x", "26gvy1ozukj", "36x", "3d", "3x",
			"40m", "50x", "7x", "dem10", "dscrx100", "f2", "j1", "v103020bu000", "x21",
		),
		Equivalences: map[string]string{
			"550uz": "sp550uz", "emp1": "epm1", "tg630ihs": "tg630", "tg850ihs": "tg850",
			"tough8000": "8000",
		},
	},
	"panasonic": {
		Prefixes: NewSet("fs", "fx", "hc", "hx", "tz"),
		Models:   NewSet("141", "161", "91"),
		Exceptions: NewSet(
			"100v", "10x", "20x", "35x", "3colors", "4colors", "4x", "5x", "60x", "8x",
		),
		Equivalences: map[string]string{
			"dmcgh4kbody": "gh4",
		},
		Postprocess: panasonicPostprocess,
	},
	"philips": {
		Exceptions: NewSet("3d", "3x"),
		Equivalences: map[string]string{
			"p44417a": "p44417", "p44417b": "p44417", "p44417p": "p44417", "p44417s": "p44417",
			"p44417w": "p44417",
		},
	},
	"polaroid": {
		Prefixes: NewSet("is", "pdc"),
		Models:   NewSet("320", "pogo"),
		Equivalences: map[string]string{
			"if045b": "if045", "z2300blk": "z2300",
		},
	},
	"ricoh": {
		Prefixes: NewSet("i", "ist", "k", "mx", "q", "wg", "x"),
		Suffixes: NewSet("ii", "iis"),
		Models: NewSet(
			"30", "60", "efina", "gr", "gxr", "istd", "istdl", "istds", "km", "kr", "kx", "q+",
			"qdigital", "qrare", "qwhite", "theta", "wgii", "wgiii",
		),
		Exceptions: NewSet("4x", "opti0"),
		Equivalences: map[string]string{
			"km": "k2000", "q+": "q", "q01": "q", "q12": "q", "qdigital": "q", "qrare": "q",
			"qs102": "qs1", "qwhite": "q", "wg3gps": "wg3", "wgii": "wg2", "wgiii": "wg3",
		},
		Postprocess: ricohPostprocess,
	},
	"samsung": {
		Prefixes: NewSet("dv", "mv", "note", "pl", "sh", "st", "tl", "wb"),
		Exceptions: NewSet(
			"18x", "20m", "21x", "21x23", "240hz", "26x", "2colors", "3d", "3g", "3x", "4k",
			"5m", "camera2", "case2013", "ip66",
		),
		Equivalences: map[string]string{
			"dv50bk": "dv50", "ecdv150f": "dv150f", "ecpl120": "pl120", "ecpl170": "pl170",
			"ecsh100": "sh100", "ecst700": "st700", "ekgc110zwaxar": "ekgc110",
			"ekgc200zkabtu": "ekgc200", "ekgc200zkawtu": "ekgc200", "ekgc200zkaxar": "ekgc200",
			"ekgc200zkaxsa": "ekgc200", "evnx2000bfwca": "nx2000", "evnx300zbsvus": "nx300",
			"gc100": "ekgc100", "gc110": "ekgc110", "gc120": "ekgc120", "gc120bkv": "ekgc120",
			"gc200": "ekgc200", "gc200zwaxar": "ekgc200", "hz15wgray": "hz15w",
			"nx2000bfwca": "nx2000", "sl102pbp": "sl102", "un22f5000afxza": "un22f5000",
			"wb110zbarus": "wb110", "wb22oof": "wb2200f", "wb350.": "wb350",
		},
	},
	"sanyo": {
		Prefixes:   NewSet("s"),
		Exceptions: NewSet("4x", "5x"),
		Equivalences: map[string]string{
			"s1285w": "s1285", "s770pu": "s770",
		},
	},
	"sigma": {
		Prefixes: NewSet("f", "sd"),
		Suffixes: NewSet("merrill", "quattro"),
	},
	"sony": {
		Prefixes: NewSet("dsc", "hdr", "ilca", "ilce", "kdf", "kdl", "nex", "nsx"),
		Suffixes: NewSet("tvl"),
		Exceptions: NewSet(
			"0whli", "10x", "12x", "130ft", "15m", "16x", "18pcs", "1g", "20m", "24ir",
			"24led's", "24pcs", "27x", "28x", "2x", "3'sony", "36x", "3color", "3g", "3x",
			"4.2v", "40m", "40mbs", "40meter", "42in", "42v", "4x", "500m", "50m", "5x", "63x",
			"6x", "7075m", "75m", "7colors", "7fps", "7x", "94mbs", "960h", "960p", "bullet1",
			"bw21", "bw65", "cmos1000tvl", "color1", "dome1", "ip66", "ip66rated", "ip67",
			"ir40m", "mpeg4", "onvif2.2", "p2p", "price1", "ps3", "ry5001c", "ry7075", "ry70d1",
			"sensor720p", "sony+dslr+700+michigan", "sony1", "sonydscwx5b", "ss7162", "top10",
		),
		Postprocess: sonyPostprocess,
	},
	"tamron": {
		Prefixes: NewSet("f"),
	},
	"toshiba": {
		Prefixes: NewSet("pdr"),
	},
	"vivitar": {
		Prefixes:   NewSet("v"),
		Models:     NewSet("20", "5118"),
		Exceptions: NewSet("10x25", "4x"),
		Equivalences: map[string]string{
			"20": "v20", "5118": "v5118", "f124": "vf124", "f128": "vf128", "s130": "vs130",
			"t027": "vt027", "t324n": "vt324", "v5024s": "v5024", "vf128pnk": "vf128",
			"vt324n": "vt324", "vx014n": "vx014", "vx137blk": "vx137", "x022": "vx022",
			"x137": "vx137", "x426": "vx426",
		},
	},
}
