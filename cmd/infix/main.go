package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/kalkul/infix"
)

func main() {
	log.SetFlags(0)
	var (
		inname, verb string
		prec         int
	)
	flag.StringVar(&inname, "in", "", "input file of expressions, one per line (default stdin if no args given)")
	flag.StringVar(&verb, "fmt", "%g", "result formatting string")
	flag.IntVar(&prec, "p", 64, "precision of calculations in bits")
	flag.Parse()
	if prec < 0 {
		log.Fatalf("precision (%d) must be positive", prec)
	}

	exprs := flag.Args()
	if inname != "" || len(exprs) == 0 {
		lines, err := inlines(inname)
		if err != nil {
			log.Fatal(err)
		}
		exprs = append(lines, exprs...)
	}

	verb += "\n"
	code := 0
	for _, src := range exprs {
		r, err := infix.EvalString(src, infix.Prec(uint(prec)))
		if err != nil {
			log.Println(err)
			code = 1
			continue
		}
		fmt.Printf(verb, r)
	}
	os.Exit(code)
}

// inlines reads one expression per line from the named file, or from stdin if
// inname is empty or "-". Blank lines are skipped.
func inlines(inname string) ([]string, error) {
	f := os.Stdin
	if inname != "" && inname != "-" {
		in, err := os.Open(inname)
		if err != nil {
			return nil, err
		}
		defer in.Close()
		f = in
	}
	var lines []string
	scan := bufio.NewScanner(f)
	for scan.Scan() {
		if s := strings.TrimSpace(scan.Text()); s != "" {
			lines = append(lines, s)
		}
	}
	if err := scan.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}
