package transport

import (
	"fmt"
	"net/http"
	"strconv"
	"testing"

	"item-showcase/internal/domain"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func float(f float64) *float64 { return &f }

func text(s string) *string { return &s }

// Create item adds full_price exactly when tax is non-null and non-zero
func TestProperty_CreateItemFullPrice(t *testing.T) {
	properties := gopter.NewProperties(nil)
	router := newSnapshotRouter(SnapshotOne)

	properties.Property("full_price = price + tax for truthy tax only", prop.ForAll(
		func(price float64, taxKind int, tax float64) bool {
			body := map[string]interface{}{"name": "Foo", "price": price}
			switch taxKind {
			case 0:
				// absent
			case 1:
				body["tax"] = nil
			case 2:
				body["tax"] = 0.0
			default:
				body["tax"] = tax
			}

			w := doRequest(t, router, http.MethodPost, "/items/", body)
			if w.Code != http.StatusOK {
				return false
			}
			result := decodeBody(t, w)

			fullPrice, present := result["full_price"]
			if taxKind < 3 || tax == 0 {
				return !present
			}
			return present && fullPrice == price+tax
		},
		gen.Float64Range(-1000, 1000),
		gen.IntRange(0, 5),
		gen.Float64Range(-100, 100),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

func TestCreateItem_SnapshotOneEchoesItem(t *testing.T) {
	router := newSnapshotRouter(SnapshotOne)

	w := doRequest(t, router, http.MethodPost, "/items/", map[string]interface{}{
		"name": "Foo", "price": 35.4, "tax": 3.2, "is_offer": true,
	})

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, map[string]interface{}{
		"name":       "Foo",
		"price":      35.4,
		"tax":        3.2,
		"is_offer":   true,
		"full_price": 35.4 + 3.2,
	}, decodeBody(t, w))

	w = doRequest(t, router, http.MethodPost, "/items/", map[string]interface{}{"name": "Bar", "price": 0})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.JSONEq(t, `{"name": "Bar", "price": 0, "tax": null, "is_offer": null}`, w.Body.String())
}

func TestCreateItem_ResponseModelSnapshots(t *testing.T) {
	t.Run("snapshot two defaults tax and drops full_price", func(t *testing.T) {
		w := doRequest(t, newSnapshotRouter(SnapshotTwo), http.MethodPost, "/items/", map[string]interface{}{
			"name": "Foo", "price": 50.2,
		})

		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		assert.JSONEq(t, `{
			"name": "Foo", "description": null, "price": 50.2, "tax": 10.5,
			"is_offer": null, "tags": []
		}`, w.Body.String())
	})

	t.Run("snapshot two rejects a null tax", func(t *testing.T) {
		w := doRequest(t, newSnapshotRouter(SnapshotTwo), http.MethodPost, "/items/", map[string]interface{}{
			"name": "Foo", "price": 50.2, "tax": nil,
		})
		assert.Equal(t, []string{"tax"}, validationFields(t, w))
	})

	t.Run("snapshot three validates nested images", func(t *testing.T) {
		w := doRequest(t, newSnapshotRouter(SnapshotThree), http.MethodPost, "/items/", map[string]interface{}{
			"name":   "Foo",
			"price":  42.0,
			"images": []map[string]string{{"url": "ftp://example.com/a.png", "name": "A"}},
		})
		assert.Equal(t, []string{"images[0].url"}, validationFields(t, w))
	})

	t.Run("snapshot three echoes nested images", func(t *testing.T) {
		w := doRequest(t, newSnapshotRouter(SnapshotThree), http.MethodPost, "/items/", map[string]interface{}{
			"name":   "Foo",
			"price":  42.0,
			"tax":    3.2,
			"tags":   []string{"rock", "metal"},
			"images": []map[string]string{{"url": "http://example.com/baz.jpg", "name": "The Foo live"}},
		})

		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		assert.JSONEq(t, `{
			"name": "Foo", "description": null, "price": 42.0, "tax": 3.2, "is_offer": null,
			"tags": ["rock", "metal"],
			"images": [{"url": "http://example.com/baz.jpg", "name": "The Foo live"}]
		}`, w.Body.String())
	})
}

func TestCreateItem_RejectsInvalidBodies(t *testing.T) {
	router := newSnapshotRouter(SnapshotTwo)

	tests := []struct {
		name   string
		body   interface{}
		fields []string
	}{
		{name: "missing price", body: map[string]interface{}{"name": "Foo"}, fields: []string{"price"}},
		{name: "missing name", body: map[string]interface{}{"price": 1.0}, fields: []string{"name"}},
		{name: "price of wrong type", body: `{"name": "Foo", "price": "cheap"}`, fields: []string{"price"}},
		{name: "long description", body: map[string]interface{}{
			"name": "Foo", "price": 1.0, "description": string(make([]byte, 301)),
		}, fields: []string{"description"}},
		{name: "empty body", body: "", fields: []string{"body"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doRequest(t, router, http.MethodPost, "/items/", tt.body)
			assert.Equal(t, tt.fields, validationFields(t, w))
		})
	}
}

func TestCreateItemResult(t *testing.T) {
	result, err := CreateItemResult(domain.Item{Name: text("Foo"), Price: float(10), Tax: float(2.5)})
	require.NoError(t, err)
	assert.Equal(t, 12.5, result["full_price"])

	result, err = CreateItemResult(domain.Item{Name: text("Foo"), Price: float(10), Tax: float(0)})
	require.NoError(t, err)
	assert.NotContains(t, result, "full_price")
	assert.Equal(t, 0.0, result["tax"])
}

func TestReadItem_SnapshotOne(t *testing.T) {
	router := newSnapshotRouter(SnapshotOne)

	w := doRequest(t, router, http.MethodGet, "/items/-7?item-query=fixedquery&size=99", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.JSONEq(t, `{"item_id": -7, "q": "fixedquery"}`, w.Body.String())

	w = doRequest(t, router, http.MethodGet, "/items/foo?item-query=fixedquery", nil)
	assert.Equal(t, []string{"item_id"}, validationFields(t, w))

	w = doRequest(t, router, http.MethodGet, "/items/1", nil)
	assert.Equal(t, []string{"item-query"}, validationFields(t, w))

	w = doRequest(t, router, http.MethodGet, "/items/1?q=fixedquery", nil)
	assert.Equal(t, []string{"item-query"}, validationFields(t, w))
}

func TestProperty_ReadItemBounds(t *testing.T) {
	properties := gopter.NewProperties(nil)
	router := newSnapshotRouter(SnapshotTwo)

	properties.Property("item_id outside [1, 1000] is rejected", prop.ForAll(
		func(itemID int) bool {
			w := doRequest(t, router, http.MethodGet, fmt.Sprintf("/items/%d?item-query=fixedquery", itemID), nil)
			if itemID >= 1 && itemID <= 1000 {
				return w.Code == http.StatusOK
			}
			return w.Code == http.StatusUnprocessableEntity
		},
		gen.IntRange(-50, 1100),
	))

	properties.Property("size outside (0, 10.5) is rejected", prop.ForAll(
		func(size float64) bool {
			target := "/items/5?item-query=fixedquery&size=" + strconv.FormatFloat(size, 'g', -1, 64)
			w := doRequest(t, router, http.MethodGet, target, nil)
			if size > 0 && size < 10.5 {
				return w.Code == http.StatusOK
			}
			return w.Code == http.StatusUnprocessableEntity
		},
		gen.OneGenOf(
			gen.Float64Range(-5, 15),
			gen.OneConstOf(0.0, 10.5, 10.4999, 0.0001),
		),
	))

	properties.Property("q other than fixedquery is rejected", prop.ForAll(
		func(q string) bool {
			w := doRequest(t, router, http.MethodGet, "/items/5?item-query="+q, nil)
			if q == "fixedquery" {
				return w.Code == http.StatusOK
			}
			return w.Code == http.StatusUnprocessableEntity
		},
		gen.OneGenOf(gen.Identifier(), gen.Const("fixedquery")),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

func TestReadItem_EchoesSize(t *testing.T) {
	router := newSnapshotRouter(SnapshotThree)

	w := doRequest(t, router, http.MethodGet, "/items/1000?item-query=fixedquery&size=10.4", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.JSONEq(t, `{"item_id": 1000, "q": "fixedquery", "size": 10.4}`, w.Body.String())

	w = doRequest(t, router, http.MethodGet, "/items/1?item-query=fixedquery", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.JSONEq(t, `{"item_id": 1, "q": "fixedquery", "size": null}`, w.Body.String())

	w = doRequest(t, router, http.MethodGet, "/items/1?item-query=fixedquery&size=large", nil)
	assert.Equal(t, []string{"size"}, validationFields(t, w))
}

func TestUpdateItem(t *testing.T) {
	for _, snapshot := range Snapshots() {
		router := newSnapshotRouter(snapshot)

		w := doRequest(t, router, http.MethodPut, "/items/5000", map[string]interface{}{
			"name": "Foo", "description": "A very nice Item", "price": 35.4, "tax": 3.2,
		})
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		assert.JSONEq(t, `{"item_name": "Foo", "item_id": 5000}`, w.Body.String())

		w = doRequest(t, router, http.MethodPut, "/items/5", map[string]interface{}{"name": "Foo"})
		assert.Equal(t, []string{"price"}, validationFields(t, w))
	}
}

func TestCreateItem_AcceptsEmptyName(t *testing.T) {
	for _, snapshot := range Snapshots() {
		w := doRequest(t, newSnapshotRouter(snapshot), http.MethodPost, "/items/", `{"name": "", "price": 1}`)

		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		assert.Equal(t, "", decodeBody(t, w)["name"])
	}

	w := doRequest(t, newSnapshotRouter(SnapshotOne), http.MethodPut, "/items/3", `{"name": "", "price": 1}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.JSONEq(t, `{"item_name": "", "item_id": 3}`, w.Body.String())
}

func TestCreateItem_NullTagsBecomeEmpty(t *testing.T) {
	for _, snapshot := range []Snapshot{SnapshotTwo, SnapshotThree} {
		w := doRequest(t, newSnapshotRouter(snapshot), http.MethodPost, "/items/", `{"name": "Foo", "price": 1, "tags": null}`)

		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		assert.Equal(t, []interface{}{}, decodeBody(t, w)["tags"], "snapshot %d", snapshot)
	}
}

func TestCreateItem_RejectsTrailingData(t *testing.T) {
	bodies := []string{
		`{"name": "x", "price": 1}{"junk": 1}`,
		`{"name": "x", "price": 1} 42`,
		`{"name": "x", "price": 1}]`,
	}

	for _, snapshot := range Snapshots() {
		router := newSnapshotRouter(snapshot)
		for _, body := range bodies {
			w := doRequest(t, router, http.MethodPost, "/items/", body)
			assert.Equal(t, []string{"body"}, validationFields(t, w), body)
		}

		w := doRequest(t, router, http.MethodPost, "/items/", "{\"name\": \"x\", \"price\": 1}\n\t ")
		assert.Equal(t, http.StatusOK, w.Code, "trailing whitespace is fine")
	}
}

func TestItemID_BeyondInt64(t *testing.T) {
	const huge = "99999999999999999999"

	w := doRequest(t, newSnapshotRouter(SnapshotOne), http.MethodGet, "/items/"+huge+"?item-query=fixedquery", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.JSONEq(t, `{"item_id": `+huge+`, "q": "fixedquery"}`, w.Body.String())

	w = doRequest(t, newSnapshotRouter(SnapshotOne), http.MethodGet, "/items/-"+huge+"?item-query=fixedquery", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.JSONEq(t, `{"item_id": -`+huge+`, "q": "fixedquery"}`, w.Body.String())

	for _, snapshot := range Snapshots() {
		w = doRequest(t, newSnapshotRouter(snapshot), http.MethodPut, "/items/"+huge, map[string]interface{}{"name": "Foo", "price": 1.0})
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		assert.JSONEq(t, `{"item_name": "Foo", "item_id": `+huge+`}`, w.Body.String())
	}

	for _, id := range []string{huge, "-" + huge} {
		w = doRequest(t, newSnapshotRouter(SnapshotTwo), http.MethodGet, "/items/"+id+"?item-query=fixedquery", nil)
		assert.Equal(t, []string{"item_id"}, validationFields(t, w))
	}
}
