// Package clioption is a minimal command-line option parser.
//
// Options are registered on a [Parser] with a short name, a long name, an [ArgType] and a
// description. [Parser.Parse] then scans an argument vector such as os.Args and records which
// options were given, along with the free tokens following each one up to the next recognized
// flag:
//
//	p := clioption.New().
//	    Add(clioption.ArgOptional, 'i', "input", "input file name.").
//	    Add(clioption.ArgOptional, 'o', "output", "output file name.")
//	p.Parse([]string{"prog", "-i", "a", "b", "--output", "c"})
//	p.Found('i')         // true
//	p.Args('i')          // ["a" "b"], true
//	p.ArgsLong("output") // ["c"], true
//
// Parsing is permissive and never fails. Unknown flags and tokens before the first recognized flag
// are dropped. Combined short flags ("-abc") and joined long options ("--input=file") are not
// supported. The argument type is recorded but not enforced.
//
// [Parser.Usage] prints a help listing and [Parser.PrintValues] prints what the latest parse found.
package clioption
