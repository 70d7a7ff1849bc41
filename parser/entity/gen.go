//go:build ignore

// gen downloads the WHATWG named character reference list and writes
// table.go.
package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"go/format"
	"log"
	"net/http"
	"os"
	"sort"
	"strings"
)

const url = "https://html.spec.whatwg.org/entities.json"

type reference struct {
	Codepoints []int  `json:"codepoints"`
	Characters string `json:"characters"`
}

func main() {
	resp, err := http.Get(url)
	if err != nil {
		log.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		log.Fatalf("GET %s: %s", url, resp.Status)
	}

	refs := map[string]reference{}
	if err := json.NewDecoder(resp.Body).Decode(&refs); err != nil {
		log.Fatal(err)
	}

	names := make([]string, 0, len(refs))
	longest := 0
	for name := range refs {
		name = strings.TrimPrefix(name, "&")
		names = append(names, name)
		if len(name) > longest {
			longest = len(name)
		}
	}
	sort.Strings(names)

	var b bytes.Buffer
	b.WriteString("// Code generated by \"go run gen.go\"; DO NOT EDIT.\n\n")
	b.WriteString("package entity\n\n")
	b.WriteString("// table maps every WHATWG named character reference, without its leading\n")
	b.WriteString("// '&', to the code points it expands to.\n")
	b.WriteString("var table = map[string]string{\n")
	for _, name := range names {
		fmt.Fprintf(&b, "\t%q: %+q,\n", name, refs["&"+name].Characters)
	}
	b.WriteString("}\n")

	src, err := format.Source(b.Bytes())
	if err != nil {
		log.Fatal(err)
	}
	if err := os.WriteFile("table.go", src, 0o644); err != nil {
		log.Fatal(err)
	}
	log.Printf("wrote %d references, longest name %d bytes", len(names), longest)
}
