// Command closingportal runs the title and escrow closing portal.
package main

import "github.com/wctsmart/closingportal/internal/cli"

func main() {
	cli.Execute()
}
