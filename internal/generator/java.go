package generator

import (
	"bufio"
	"fmt"
	"io"
)

// EmitJava writes one String[][] declaration per table, indented for pasting
// into a class body:
//
//	    String[][] solver_options = {
//	        {"maxiter", "maxiter (default 100)", "Maximum number of iterations"},
//	    };
//
// Each declaration is followed by a blank line.
func EmitJava(w io.Writer, tables []Table, _ Options) error {
	bw := bufio.NewWriter(w)
	for _, t := range tables {
		fmt.Fprintf(bw, "    String[][] %s = {\n", t.Name)
		for _, r := range t.Rows {
			fmt.Fprintf(bw, "        {\"%s\", \"%s\", \"%s\"},\n",
				EscapeLiteral(r.Name), EscapeLiteral(r.Heading), EscapeLiteral(r.Description))
		}
		fmt.Fprint(bw, "    };\n\n")
	}
	return bw.Flush()
}
