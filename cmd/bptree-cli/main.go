// Interactive shell over the byte store. Useful for poking at tree
// behavior by hand:
//
//	go run ./cmd/bptree-cli -order 4 -compress snappy
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"

	"bptree/compression"
	"bptree/store"

	"github.com/fatih/color"
)

var (
	promptColor = color.New(color.FgCyan)
	okColor     = color.New(color.FgGreen)
	errColor    = color.New(color.FgRed)
)

func main() {
	order := flag.Int("order", store.DefaultOrder, "max keys per tree node")
	codec := flag.String("compress", "", "value codec: flate, gzip, snappy (default none)")
	flag.Parse()

	var comp compression.Compressor
	if *codec != "" {
		var ok bool
		if comp, ok = compression.Compressors[*codec]; !ok {
			errColor.Fprintf(os.Stderr, "unknown codec %q\n", *codec)
			os.Exit(1)
		}
	}

	s := store.New(comp, *order)
	repl(s, bufio.NewScanner(os.Stdin))
}

func repl(s *store.Store, scanner *bufio.Scanner) {
	printHelp()
	promptColor.Print("> ")
	for scanner.Scan() {
		if !processInput(s, scanner.Text()) {
			return
		}
		promptColor.Print("> ")
	}
}

func printHelp() {
	fmt.Println(`
B+ Tree Store CLI

Available Commands:
  SET <key> <val>    Store a key-value pair
  GET <key>          Retrieve the value for key
  DEL <key>          Remove a key
  RANGE <lo> <hi>    List values for keys in [lo, hi]
  STATS              Show tree statistics and traffic counters
  CHECK              Validate the tree's structural invariants
  EXIT               Terminate this session`)
}

// processInput handles one line; it returns false on EXIT.
func processInput(s *store.Store, line string) bool {
	fields := strings.Fields(line)
	if len(fields) < 1 {
		return true
	}
	switch cmd := strings.ToLower(fields[0]); cmd {
	default:
		errColor.Printf("Unknown command %q\n", cmd)
	case "help":
		printHelp()
	case "set":
		doSet(s, fields[1:])
	case "get":
		doGet(s, fields[1:])
	case "del":
		doDel(s, fields[1:])
	case "range":
		doRange(s, fields[1:])
	case "stats":
		doStats(s)
	case "check":
		if err := s.Check(); err != nil {
			errColor.Println(err)
		} else {
			okColor.Println("OK")
		}
	case "exit", "quit":
		return false
	}
	return true
}

func doSet(s *store.Store, args []string) {
	if len(args) != 2 {
		fmt.Println("Usage: SET <key> <value>")
		return
	}
	if err := s.SetString(args[0], []byte(args[1])); err != nil {
		errColor.Println(err)
		return
	}
	okColor.Println("OK")
}

func doGet(s *store.Store, args []string) {
	if len(args) != 1 {
		fmt.Println("Usage: GET <key>")
		return
	}
	v, ok := s.GetString(args[0])
	if !ok {
		errColor.Println("Key not found.")
		return
	}
	fmt.Println(string(v))
}

func doDel(s *store.Store, args []string) {
	if len(args) != 1 {
		fmt.Println("Usage: DEL <key>")
		return
	}
	if !s.Delete([]byte(args[0])) {
		errColor.Println("Key not found.")
		return
	}
	okColor.Println("OK")
}

func doRange(s *store.Store, args []string) {
	if len(args) != 2 {
		fmt.Println("Usage: RANGE <lo> <hi>")
		return
	}
	vals, err := s.Range([]byte(args[0]), []byte(args[1]))
	if err != nil {
		errColor.Println(err)
		return
	}
	for _, v := range vals {
		fmt.Println(string(v))
	}
	okColor.Printf("%d value(s)\n", len(vals))
}

func doStats(s *store.Store) {
	st := s.Stats()
	fmt.Printf("entries: %d\nheight:  %d\nnodes:   %d\n", st.Count, st.Height, st.NodeCount)
	fmt.Printf("written: %s\nread:    %s\ndeleted: %s\n", s.Written(), s.Read(), s.Deleted())
}
