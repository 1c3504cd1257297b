package onboards

const banner = `
██╗  ██╗███████╗██████╗ ███╗   ███╗███████╗███████╗
██║  ██║██╔════╝██╔══██╗████╗ ████║██╔════╝██╔════╝
███████║█████╗  ██████╔╝██╔████╔██║█████╗  ███████╗
██╔══██║██╔══╝  ██╔══██╗██║╚██╔╝██║██╔══╝  ╚════██║
██║  ██║███████╗██║  ██║██║ ╚═╝ ██║███████╗███████║
╚═╝  ╚═╝╚══════╝╚═╝  ╚═╝╚═╝     ╚═╝╚══════╝╚══════╝
`

const skinExample = `
scheme greet(name):
    announce("Hello, " + name + "!")
    abandon truth

fortify Person:
    scheme initialize(myself, name, age):
        myself.name = name
        myself.age = age
`

const philosophy = `
Why 'scheme' instead of 'def'?
  → Because a function is a scheme, a plan!

Why 'abandon' instead of 'return'?
  → Because you abandon the flow, give up control!

Why 'myself' instead of 'self'?
  → Because myself is personal, human!
`

// translation table rows, Hermes then Python
var translations = [][2]string{
	{"scheme", "def"},
	{"abandon", "return"},
	{"fortify", "class"},
	{"myself", "self"},
	{"announce", "print"},
	{"aahaan", "if"},
	{"cascade", "elif"},
	{"thats_it", "else"},
	{"iterate", "for"},
	{"truth", "True"},
	{"falsehood", "False"},
	{"nothing", "None"},
}

const firstProgram = `scheme greet(name):
    announce("Hello, " + name)
    abandon truth

greet("World")
`

const quickStart = `
Quick Start:
  hermes run hello.herm      → Run a file
  hermes compile file.herm   → Transpile to Python
  hermes check file.herm     → Syntax validation

Learn more:
  → https://github.com/Pilan-AI/hermes-lang
  → https://pilan.ai

"Code in your culture. Hermes translates."
`

// SampleProgram is written to the examples directory.
const SampleProgram = `scheme greet(name):
    announce("Hello, " + name + "!")
    abandon truth

scheme main():
    result = greet("World")
    aahaan result:
        announce("Greeting successful!")
    thats_it:
        announce("Something went wrong")

main()
`
