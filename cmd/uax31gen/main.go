// Command uax31gen compiles a DerivedCoreProperties.txt file into a frozen
// Go source table.
//
// Usage:
//
//	uax31gen -i DerivedCoreProperties.txt -o tables.go -pkg mypackage
//
// When run through go generate, -pkg defaults to $GOPACKAGE.
package main

import (
	"flag"
	"log"
	"os"

	"github.com/npillmayer/uax31/ucd"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("uax31gen: ")
	input := flag.String("i", "", "the path to DerivedCoreProperties.txt")
	output := flag.String("o", "", "the path to the output file")
	pkg := flag.String("pkg", os.Getenv("GOPACKAGE"), "the package name of the output file")
	flag.Parse()

	if *input == "" {
		log.Fatal("must provide input file with -i")
	}
	if *output == "" {
		log.Fatal("must provide output file with -o")
	}
	if *pkg == "" {
		log.Fatal("must provide package name with -pkg (or run under go generate)")
	}

	file, err := os.Open(*input)
	if err != nil {
		log.Fatal(err)
	}
	defer file.Close()

	table, err := ucd.LoadTable(*input, file)
	if err != nil {
		log.Fatalf("failed to compile table: %v", err)
	}

	out, err := os.Create(*output)
	if err != nil {
		log.Fatal(err)
	}
	defer out.Close()

	if err := table.WriteGoSource(out, *pkg); err != nil {
		log.Fatalf("failed to write %s: %v", *output, err)
	}
}
