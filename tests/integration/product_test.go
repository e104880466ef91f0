//go:build integration

package integration

import (
	"net/http"
	"strings"
	"testing"
)

func TestProductPage(t *testing.T) {
	resp := doGet(t, "/product/1")
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Fatalf("expected text/html content type, got %q", ct)
	}

	body := readBody(t, resp)

	for _, want := range []string{
		"Aurora Tee",
		`data-js="product-options"`,
		`name="attribute[10]"`, // Size dropdown
		`name="attribute[11]"`, // Color swatch
		`data-js="product-variants"`,
	} {
		if !strings.Contains(body, want) {
			t.Errorf("page missing %q", want)
		}
	}

	// Catalog defaults: Medium and Slate are flagged is_default in the seed.
	if !strings.Contains(body, `<option value="101" selected>Medium</option>`) {
		t.Error("expected catalog default Medium to be preselected")
	}
}

func TestProductPage_SelectedVariant(t *testing.T) {
	resp := doGet(t, "/product/1?variant_id=1003")
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	body := readBody(t, resp)

	// Variant 1003 is Small + Ochre; the request overrides catalog defaults.
	if !strings.Contains(body, `<option value="100" selected>Small</option>`) {
		t.Error("expected Small to be preselected for variant 1003")
	}
	if strings.Contains(body, `<option value="101" selected>`) {
		t.Error("catalog default Medium should not stay selected")
	}
}

func TestProductPage_UnknownVariant(t *testing.T) {
	resp := doGet(t, "/product/1?variant_id=999999")
	defer resp.Body.Close()

	// An unknown variant id degrades to catalog defaults, never an error.
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	body := readBody(t, resp)
	if !strings.Contains(body, `<option value="101" selected>Medium</option>`) {
		t.Error("expected catalog default Medium with unknown variant id")
	}
}

func TestProductPage_NotFound(t *testing.T) {
	tests := []struct {
		name string
		path string
	}{
		{name: "unknown product", path: "/product/424242"},
		{name: "non-numeric id", path: "/product/abc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := doGet(t, tt.path)
			defer resp.Body.Close()

			if resp.StatusCode != http.StatusNotFound {
				t.Fatalf("expected 404, got %d", resp.StatusCode)
			}
		})
	}
}

func TestVariantsJSON(t *testing.T) {
	resp := doGet(t, "/product/1/options.json")
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); !strings.HasPrefix(ct, "application/json") {
		t.Fatalf("expected application/json content type, got %q", ct)
	}

	variants := decodeJSON[[]variantResponse](t, resp)
	if len(variants) != 6 {
		t.Fatalf("expected 6 variants, got %d", len(variants))
	}

	byID := make(map[int64]variantResponse, len(variants))
	for _, v := range variants {
		byID[v.VariantID] = v
	}

	small := byID[1000]
	if small.SKU != "AUR-S-SLATE" {
		t.Errorf("variant 1000 sku: got %q", small.SKU)
	}
	if small.Inventory != 12 {
		t.Errorf("variant 1000 inventory: got %d, want 12", small.Inventory)
	}
	if small.FormattedPrice != "$24.00" {
		t.Errorf("variant 1000 formatted price: got %q", small.FormattedPrice)
	}
	if len(small.Options) != 2 || small.Options[0].OptionID != 10 {
		t.Errorf("variant 1000 options: got %+v", small.Options)
	}

	disabled := byID[1005]
	if !disabled.Disabled {
		t.Error("variant 1005 should be disabled")
	}
	if disabled.DisabledMessage != "Back in stock soon" {
		t.Errorf("variant 1005 message: got %q", disabled.DisabledMessage)
	}
}
