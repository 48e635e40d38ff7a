package main

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/hrko/store-assets/internal/assets"
)

func TestDump(t *testing.T) {
	tests := []struct {
		asset    assets.Asset
		wantKind string
	}{
		{assets.Promo, "ChipRow"},
		{assets.Screenshot, "CodeBlock"},
	}
	for _, tt := range tests {
		t.Run(tt.asset.Name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := dump(&buf, tt.asset); err != nil {
				t.Fatalf("dump: %v", err)
			}

			var got struct {
				ID     string `json:"id"`
				Width  int    `json:"width"`
				Height int    `json:"height"`
				Items  []struct {
					Kind string `json:"kind"`
				} `json:"items"`
			}
			if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
				t.Fatalf("output is not valid JSON: %v\n%s", err, buf.String())
			}
			if got.ID != tt.asset.Name || got.Width != tt.asset.Width || got.Height != tt.asset.Height {
				t.Errorf("header = %s %dx%d; want %s %dx%d",
					got.ID, got.Width, got.Height, tt.asset.Name, tt.asset.Width, tt.asset.Height)
			}
			if len(got.Items) != len(tt.asset.Layout()) {
				t.Errorf("len(items) = %d; want %d", len(got.Items), len(tt.asset.Layout()))
			}
			var found bool
			for _, it := range got.Items {
				if it.Kind == tt.wantKind {
					found = true
				}
			}
			if !found {
				t.Errorf("no item of kind %s", tt.wantKind)
			}
		})
	}
}

func TestKindOf(t *testing.T) {
	for _, d := range assets.PromoLayout() {
		if k := kindOf(d); k == "" || bytes.ContainsRune([]byte(k), '.') {
			t.Errorf("kindOf(%T) = %q; want a bare type name", d, k)
		}
	}
}
