// Package document assembles the Quarto solutions document and checks
// the structure of an assembled one.
//
// The assembler builds the whole document in memory before returning it.
// Callers write the result once, so a failure while reading any solution
// file leaves the previous output untouched.
//
// Layout of a section:
//
//	## <day>
//	[https://adventofcode.com/<year>/day/<day>](https://adventofcode.com/<year>/day/<day>)
//
//	<note>
//
//	::: {.column-page}
//	```{python}
//	<solution file, verbatim>
//	```
//	:::
package document
