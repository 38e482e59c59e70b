package rules

// canonModels maps North American and Japanese market names, and a few
// catalogue numbers, onto the model names used for the rest of the range.
var canonModels = map[string]string{
	"sl1": "100d", "x7": "100d", "t1i": "500d", "t1": "500d", "t2i": "550d", "t3": "1100d",
	"x50": "1100d", "ds126291": "1100d", "t3i": "600d", "3ti": "600d", "x5": "600d",
	"ds126311": "600d", "t4i": "650d", "t5": "1200d", "t5i": "700d", "x7i": "700d",
	"ds126191": "1000d", "xs": "1000d", "ds6041": "300d", "ds126071": "350d", "xt": "350d",
	"ds126151": "400d", "xti": "400d", "ds126181": "450d", "xsi": "450d", "ds126281": "60d",
	"ixy120": "135", "ixy31s": "500", "ixy610f": "330", "ixy800": "sd700", "ixy90": "sd750",
	"ixus100": "sd780", "ixus1000": "sd4500", "ixus105": "sd1300", "ixus110": "sd960",
	"ixus1100": "510", "ixus115": "100", "ixus120": "sd940", "ixus125": "110",
	"ixus130": "sd1400", "ixus132": "115", "ixus135": "120", "ixus140": "130", "ixus145": "135",
	"ixus145bk": "135", "ixus145pr": "135", "ixus145r": "135", "ixus150": "140",
	"ixus150gy": "140", "ixus150r": "140", "ixus155": "150", "ixus155bl": "150",
	"ixus155r": "150", "ixus155s": "150", "ixus200": "sd980", "ixus210": "sd3500",
	"ixus220": "300", "ixus230": "310", "ixus240": "320", "ixus255": "330", "ixus265": "340",
	"ixus30": "sd200", "ixus300": "sd4000", "ixus310": "500", "ixus40": "sd300",
	"ixus400": "s400", "ixus430": "s410", "ixus50": "sd400", "ixus500": "520", "ixus510": "530",
	"ixus55": "sd450", "ixus60": "sd600", "ixus65": "sd630", "ixus70": "sd1000",
	"ixus700": "sd500", "ixus75": "sd750", "ixus750": "sd550", "ixus80": "sd1100",
	"ixus800": "sd700", "ixus85": "sd770", "ixus850": "sd800", "ixus860": "sd870",
	"ixus870": "sd880", "ixus90": "sd790", "ixus900": "sd900", "ixus95": "sd1200",
	"ixus950": "sd850", "ixus960": "sd950", "ixus970": "sd890", "ixus980": "sd990",
	"ixus990": "sd970", "ixusi5": "sd20", "ixusi7": "sd40",
}

// sonyModels fixes truncated or decorated Sony model strings.
var sonyModels = map[string]string{
	"1200tv": "1200tvl", "300k": "a300", "350x": "a350", "420800tvl": "420tvl",
	"480600tvl": "480tvl", "5n": "nex5n", "600tvllow": "600tvl", "700tv": "700tvl", "7r": "a7r",
	"7s": "a7s", "a350x": "a350", "a37m": "a37", "a55vl": "a55", "a58m": "a58", "a65vk": "a65",
	"a65vl": "a65", "a65vm": "a65", "a77m2": "a77 2", "a77m2q": "a77 2", "a77vm": "a77",
	"cd400kitis": "cd400", "dsch7megamovie": "dsch7", "dschx400vb": "dschx400",
	"dschx50vb": "dschx50", "dschx60vb": "dschx60", "dscp93a": "dscp93",
	"dscrx100m": "dscrx100", "dsct300r": "dsct300", "dscw120p": "dscw120",
	"dscw120digital": "dscw120", "dscw150r": "dscw150", "dscw1digital": "dscw1",
	"dscw350d": "dscw350", "dscw710p": "dscw710", "dscw810s": "dscw810", "dscw830s": "dscw830",
	"dscwx350w": "dscwx350", "f707": "dscf707", "f828": "dscf828", "h10": "dsch10",
	"h20": "dsch20", "h200": "dsch200", "h400": "dsch400", "h50": "dsch50", "h90": "dsch90",
	"hdras100vr": "hdras100", "hdrpj240er": "hdrpj240e", "hdrpj240es": "hdrpj240e",
	"hdrpj340ew": "hdrpj340e", "nex3kb": "nex3", "nex3nbmbdl": "nex3n", "nex567": "nex5",
	"nex5c": "nex5", "nex5ndslr": "nex5n", "nex5rkb": "nex5r", "nex5tls": "nex5t",
	"nex6lb2bdl": "nex6", "nex6lb": "nex6", "s2100": "dscs2100", "s50": "dscs50",
	"s650": "dscs650", "s70": "dscs70", "s85": "dscs85", "slta55": "a55", "stla99v": "a99",
	"t300": "dsct300", "t90": "dsct90", "t99": "dsct99",
}
