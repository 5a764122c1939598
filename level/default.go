package level

// Default is the built-in level: four brick floors joined by ladders, two ropes,
// six pieces of gold and three enemy starts
var Default = Definition{
	Name:  "tower",
	Width: 20,
	Rows: []string{
		"SSSSSSSSSSSSSSSSSSSS",
		"S         X        S",
		"SBBBCBBLBBBBCBBLBBBS",
		"S      L RRRRR L   S",
		"S      L       L   S",
		"S      L       LX  S",
		"SBBLBBCBBBBBLBBBBCBS",
		"S  L        L RRRR S",
		"S  L        L      S",
		"S  LX       L      S",
		"SBBBBCBBBLBBBBCBBLBS",
		"S        L       L S",
		"S        L       L S",
		"S P      L       L S",
		"SSSSSSSSSSSSSSSSSSSS",
	},
}
