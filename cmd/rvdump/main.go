package main

import (
	"encoding/binary"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/logrusorgru/aurora/v4"
	"github.com/xyproto/env/v2"

	"github.com/xyproto/rv32"
)

// A tiny disassembler for 32-bit RISC-V machine code

const versionString = "rvdump 1.0.0"

func main() {
	var input = flag.String("f", "", "read little-endian instruction words from this file")
	var inputLong = flag.String("file", "", "read little-endian instruction words from this file")
	var base = flag.Uint64("b", 0, "base address of the first instruction")
	var noColor = flag.Bool("n", env.Has("NO_COLOR"), "disable colored output")
	var version = flag.Bool("V", false, "print the version and exit")
	flag.Parse()

	if *version {
		fmt.Println(versionString)
		return
	}

	if *inputLong != "" {
		*input = *inputLong
	}

	au := aurora.New(aurora.WithColors(!*noColor))

	var words []uint32
	if *input != "" {
		data, err := os.ReadFile(*input)
		if err != nil {
			log.Fatalln(err)
		}
		if len(data)%4 != 0 {
			log.Fatalf("%s: length %d is not a multiple of 4 bytes", *input, len(data))
		}
		for i := 0; i < len(data); i += 4 {
			words = append(words, binary.LittleEndian.Uint32(data[i:i+4]))
		}
	} else {
		if flag.NArg() == 0 {
			fmt.Fprintf(os.Stderr, "usage: rvdump [-f file] [-b addr] [word ...]\n")
			os.Exit(1)
		}
		for _, arg := range flag.Args() {
			word, err := strconv.ParseUint(arg, 0, 32)
			if err != nil {
				log.Fatalf("not a 32-bit word: %s", arg)
			}
			words = append(words, uint32(word))
		}
	}

	addr := *base
	for _, word := range words {
		ins, err := rv32.Decode(word)
		if err != nil {
			fmt.Printf("%08x:  %08x  %s  %s\n",
				addr, word,
				au.Red(fmt.Sprintf(".word 0x%08X", word)),
				au.Gray(12, "# "+err.Error()))
		} else {
			fmt.Printf("%08x:  %08x  %s\n", addr, word, au.Yellow(ins.String()))
		}
		addr += 4
	}
}
