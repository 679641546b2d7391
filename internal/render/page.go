// Package render turns a core.Catalog into the static flyer page.
//
// Components are templ components, so the same page renders into the
// output file and into the preview server's response.
package render

import (
	"context"
	_ "embed"
	"fmt"
	"io"
	"time"

	"github.com/JonMunkholm/TireFlyer/internal/core"
	"github.com/a-h/templ"
	"github.com/google/uuid"
)

//go:embed assets/flyer.css
var flyerCSS string

//go:embed assets/cart.js
var cartJS string

// DataElementID is the id of the script block holding the record JSON.
const DataElementID = "inventory-data"

// PageData is everything one page render needs.
type PageData struct {
	Title         string
	Catalog       core.Catalog
	QuoteEndpoint string
	BuildID       string
	GeneratedAt   time.Time
}

// NewPageData stamps a catalog with a fresh build id and timestamp.
func NewPageData(title string, cat core.Catalog, quoteEndpoint string) PageData {
	return PageData{
		Title:         title,
		Catalog:       cat,
		QuoteEndpoint: quoteEndpoint,
		BuildID:       uuid.NewString(),
		GeneratedAt:   time.Now().UTC(),
	}
}

// htmlWriter writes markup and remembers the first error, so component
// bodies read top to bottom without an error check per line.
type htmlWriter struct {
	w   io.Writer
	err error
}

func (h *htmlWriter) raw(s string) {
	if h.err == nil {
		_, h.err = io.WriteString(h.w, s)
	}
}

func (h *htmlWriter) text(s string) {
	h.raw(templ.EscapeString(s))
}

func (h *htmlWriter) rawf(format string, args ...any) {
	h.raw(fmt.Sprintf(format, args...))
}

// attr writes name="value" with the value escaped.
func (h *htmlWriter) attr(name, value string) {
	h.rawf(` %s="%s"`, name, templ.EscapeString(value))
}

func (h *htmlWriter) render(ctx context.Context, c templ.Component) {
	if h.err == nil {
		h.err = c.Render(ctx, h.w)
	}
}

// Page is the complete flyer document.
func Page(d PageData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &htmlWriter{w: w}

		h.raw("<!DOCTYPE html>\n<html lang=\"en\"><head><meta charset=\"utf-8\">")
		h.raw(`<meta name="viewport" content="width=device-width, initial-scale=1">`)
		h.raw(`<meta name="generator" content="tireflyer">`)
		h.raw("<meta")
		h.attr("name", "build-id")
		h.attr("content", d.BuildID)
		h.raw("><title>")
		h.text(d.Title)
		h.raw("</title><style>")
		h.raw(flyerCSS)
		h.raw("</style></head><body>")

		h.raw(`<header class="flyer-header"><h1>`)
		h.text(d.Title)
		h.raw(`</h1><p class="generated">Prices as of `)
		h.text(d.GeneratedAt.Format("January 2, 2006"))
		h.raw(`</p><button type="button" class="cart-toggle" id="cart-toggle">Quote cart (<span id="cart-count">0</span>)</button></header>`)

		h.raw("<main>")
		h.render(ctx, SummaryBlock(d.Catalog.Summary))
		h.render(ctx, FilterBar(core.ManufacturerNames(d.Catalog.Records)))
		h.render(ctx, CardGrid(d.Catalog.Records))
		h.raw("</main>")

		h.render(ctx, CartWidget(d.QuoteEndpoint))
		h.render(ctx, DataBlock(d.Catalog.Records))

		h.raw("<script>")
		h.raw(cartJS)
		h.raw("</script></body></html>\n")

		return h.err
	})
}

// SummaryBlock is the statistics strip above the grid.
func SummaryBlock(s core.Summary) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &htmlWriter{w: w}

		stat := func(id, label, value string) {
			h.raw(`<div class="stat"`)
			h.attr("id", id)
			h.raw(`><span class="stat-value">`)
			h.text(value)
			h.raw(`</span><span class="stat-label">`)
			h.text(label)
			h.raw("</span></div>")
		}

		h.raw(`<section class="summary" aria-label="Sale summary">`)
		stat("stat-items", "Tires on sale", fmt.Sprint(s.TotalItems))
		stat("stat-units", "Units in stock", fmt.Sprint(s.TotalUnits))
		stat("stat-avg-savings", "Average savings", Dollars(s.AverageSavings))
		stat("stat-max-discount", "Up to", Percent(s.MaxDiscount)+" off")
		if s.MinDiscount != s.MaxDiscount {
			stat("stat-min-discount", "Starting at", Percent(s.MinDiscount)+" off")
		}
		if s.WinterItems > 0 {
			stat("stat-winter", "Winter tires", fmt.Sprint(s.WinterItems))
		}
		h.raw("</section>")

		return h.err
	})
}

// FilterBar renders the client-side filters.
func FilterBar(manufacturers []string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &htmlWriter{w: w}

		h.raw(`<section class="filters"><label>Brand <select id="filter-manufacturer"><option value="">All brands</option>`)
		for _, m := range manufacturers {
			h.raw("<option")
			h.attr("value", m)
			h.raw(">")
			h.text(m)
			h.raw("</option>")
		}
		h.raw(`</select></label>`)
		h.raw(`<label><input type="checkbox" id="filter-winter"> Winter only</label>`)
		h.raw(`<label>Search <input type="search" id="filter-search" placeholder="Model, size or item"></label>`)
		h.raw(`<span id="filter-count" class="filter-count"></span></section>`)

		return h.err
	})
}

// CartKeys returns the quote-cart key of every record, index-aligned.
// The first record with an item code is keyed by the code itself; later
// records repeating it get "code#2", "code#3" and so on. Records without
// an item code get "" and cannot be added to the cart.
func CartKeys(records []core.Record) []string {
	keys := make([]string, len(records))
	seen := make(map[string]int, len(records))
	for i, r := range records {
		if r.ItemCode == "" {
			continue
		}
		seen[r.ItemCode]++
		if n := seen[r.ItemCode]; n > 1 {
			keys[i] = fmt.Sprintf("%s#%d", r.ItemCode, n)
		} else {
			keys[i] = r.ItemCode
		}
	}
	return keys
}

// CardGrid renders one card per record, in record order.
func CardGrid(records []core.Record) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &htmlWriter{w: w}
		keys := CartKeys(records)

		h.raw(`<section class="grid" id="card-grid">`)
		for i, r := range records {
			h.render(ctx, Card(r, i, keys[i]))
		}
		h.raw("</section>")

		return h.err
	})
}

// Card is a single tire offer. index is the record's position in the data
// block; an empty cartKey renders the card without an add-to-quote button.
func Card(r core.Record, index int, cartKey string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &htmlWriter{w: w}

		h.rawf(`<article class="card badge-%s stock-%s"`, r.Badge, r.Stock)
		h.attr("data-item", r.ItemCode)
		h.rawf(` data-index="%d"`, index)
		h.attr("data-manufacturer", r.Manufacturer)
		h.rawf(` data-winter="%t">`, r.IsWinterTire)

		h.rawf(`<span class="badge badge-%s">`, r.Badge)
		h.text(r.Badge.Label())
		h.raw(" ")
		h.text(Percent(r.DiscountPercent))
		h.raw(" OFF</span>")

		if r.LogoURL != "" {
			h.raw(`<img class="logo" loading="lazy"`)
			h.attr("src", string(templ.URL(r.LogoURL)))
			h.attr("alt", r.Manufacturer)
			h.raw(">")
		}

		h.raw(`<h2 class="maker">`)
		h.text(r.Manufacturer)
		h.raw(`</h2><p class="model">`)
		h.text(r.Model)
		h.raw("</p>")

		if r.Size != "" || r.TypeDescription != "" {
			h.raw(`<p class="size">`)
			h.text(r.Size)
			if r.Size != "" && r.TypeDescription != "" {
				h.raw(" &middot; ")
			}
			h.text(r.TypeDescription)
			h.raw("</p>")
		}
		if r.IsWinterTire {
			h.raw(`<span class="winter" title="Winter tire">&#10052; Winter</span>`)
		}

		h.raw(`<p class="prices"><span class="sale-price">`)
		h.text(Price(r.SalePrice))
		h.raw(`</span> <s class="regular-price">`)
		h.text(Price(r.RegularPrice))
		h.raw(`</s></p><p class="savings">You save `)
		h.text(Dollars(r.Savings))
		h.raw("</p>")

		h.rawf(`<p class="stock stock-%s">`, r.Stock)
		h.text(r.Stock.Label(r.StockQuantity))
		h.raw(`</p><p class="item-code">Item `)
		h.text(r.ItemCode)
		h.raw("</p>")

		if cartKey != "" {
			h.raw(`<button type="button" class="add-to-quote"`)
			h.attr("data-key", cartKey)
			h.raw(">Add to quote</button>")
		}
		h.raw("</article>")

		return h.err
	})
}

// CartWidget is the quote cart drawer and request form. Without an
// endpoint the cart still works but the form cannot be submitted.
func CartWidget(endpoint string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &htmlWriter{w: w}

		h.raw(`<aside class="cart" id="cart" hidden><div class="cart-panel" role="dialog" aria-label="Quote cart">`)
		h.raw(`<button type="button" class="cart-close" id="cart-close" aria-label="Close">&times;</button>`)
		h.raw(`<h2>Request a quote</h2><ul id="cart-items" class="cart-items"></ul>`)
		h.raw(`<p id="cart-empty">Your quote cart is empty.</p>`)
		h.raw(`<form id="quote-form"`)
		h.attr("data-endpoint", endpoint)
		h.raw(`>`)
		h.raw(`<label>Name <input name="name" required></label>`)
		h.raw(`<label>Email <input name="email" type="email" required></label>`)
		h.raw(`<label>Phone <input name="phone" type="tel"></label>`)
		h.raw(`<label>Notes <textarea name="notes" rows="3"></textarea></label>`)
		if endpoint != "" {
			h.raw(`<button type="submit">Send quote request</button>`)
		} else {
			h.raw(`<p class="cart-note">Call us with your item codes to request a quote.</p>`)
		}
		h.raw(`<p id="quote-status" role="status"></p></form></div></aside>`)

		return h.err
	})
}

// DataBlock embeds the record list as JSON for the page script.
func DataBlock(records []core.Record) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if records == nil {
			records = []core.Record{}
		}
		data, err := templ.JSONString(records)
		if err != nil {
			return fmt.Errorf("encode records: %w", err)
		}

		h := &htmlWriter{w: w}
		h.rawf(`<script type="application/json" id="%s">`, DataElementID)
		h.raw(data)
		h.raw("</script>")
		return h.err
	})
}
