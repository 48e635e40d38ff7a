package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/tidwall/pretty"

	"github.com/hrko/store-assets/internal/assets"
	"github.com/hrko/store-assets/pkg/graphics"
)

// Item is one directive of a layout, tagged with its kind.
type Item struct {
	Kind      string             `json:"kind"`
	Directive graphics.Directive `json:"directive"`
}

func main() {
	names := os.Args[1:]
	if len(names) == 0 {
		names = []string{"promo", "screenshot"}
	}

	for _, name := range names {
		a, ok := assets.Lookup(name)
		if !ok {
			fmt.Printf("Error: unknown asset '%s' (want promo or screenshot)\n", name)
			os.Exit(1)
		}
		if err := dump(os.Stdout, a); err != nil {
			fmt.Printf("Error dumping layout of '%s': %s\n", name, err)
			os.Exit(1)
		}
	}
}

func dump(w io.Writer, a assets.Asset) error {
	items := make([]Item, 0)
	for _, d := range a.Layout() {
		items = append(items, Item{Kind: kindOf(d), Directive: d})
	}

	jsonData := map[string]interface{}{
		"id":     a.Name,
		"width":  a.Width,
		"height": a.Height,
		"items":  items,
	}

	var tmpBuf bytes.Buffer
	encoder := json.NewEncoder(&tmpBuf)
	encoder.SetEscapeHTML(false)
	if err := encoder.Encode(jsonData); err != nil {
		return err
	}
	_, err := w.Write(pretty.Pretty(tmpBuf.Bytes()))
	return err
}

func kindOf(d graphics.Directive) string {
	name := fmt.Sprintf("%T", d)
	return strings.TrimPrefix(name, "graphics.")
}
