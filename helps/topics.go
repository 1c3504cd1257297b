package helps

// Topic is a canned help section. Name is matched against queries.
type Topic struct {
	Name    string
	Content string
}

// Topics in answer order.
var Topics = []Topic{
	{
		Name: "sangam",
		Content: "## Sangam Skin\n" +
			"\n" +
			"The Sangam skin provides traditional Tamil cultural elements.\n" +
			"\n" +
			"Usage:\n" +
			"```\n" +
			"hermes\n" +
			"scheme main(name: string):\n" +
			"    announce(\"Vanakkam, \" + name)\n" +
			"```\n" +
			"\n" +
			"Examples:\n" +
			"```\n" +
			"hermes\n" +
			"scheme greet(name: \"world\"):\n" +
			"    announce(\"Hello, \" + name)\n" +
			"```\n",
	},
	{
		Name: "transpiler",
		Content: "## Transpiler Usage\n" +
			"\n" +
			"The transpiler converts Hermes syntax to Python.\n" +
			"\n" +
			"Main Features:\n" +
			"- Sangam skin keywords (வளல், து, etc.)\n" +
			"- Traditional Tamil cultural patterns\n" +
			"- Compile-time error checking\n",
	},
	{
		Name: "syntax",
		Content: "## Hermes Syntax Reference\n" +
			"\n" +
			"Hermes is a cultural syntax language that transpiles to Python.\n" +
			"\n" +
			"Basic Structure:\n" +
			"```\n" +
			"scheme name(parameters):\n" +
			"    action1\n" +
			"    action2\n" +
			"    action3\n" +
			"\n" +
			"thats_it:\n" +
			"    action4\n" +
			"```\n" +
			"\n" +
			"Cultural Keywords (Sangam Skin):\n" +
			"- வளல் (Vanakkam) - \"Let it happen\"\n" +
			"- து (Thu) - \"Do\"\n" +
			"- அ (Ka) - \"Do\" (command)\n" +
			"- ப (Pa) - \"Do\" (suggestion)\n",
	},
}
