package sheets

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"ReceiptLedger/internal/entity"
	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/option"
)

func TestAppendRecord(t *testing.T) {
	record := entity.ReceiptRecord{
		Date:     "2024-03-15",
		Store:    "스타벅스 강남점",
		Amount:   9000,
		Category: entity.CategoryFood,
		Payment:  entity.PaymentCard,
	}

	var (
		gotPath  string
		gotQuery string
		gotBody  struct {
			Values [][]interface{} `json:"values"`
		}
	)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		body, _ := io.ReadAll(r.Body)
		_ = jsoniter.Unmarshal(body, &gotBody)

		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"spreadsheetId":"sheet-1","updates":{"updatedRows":1}}`)
	}))
	defer srv.Close()

	client, err := NewWithOptions(context.Background(), "sheet-1", "",
		option.WithEndpoint(srv.URL+"/"),
		option.WithoutAuthentication(),
		option.WithHTTPClient(srv.Client()),
	)
	require.NoError(t, err)

	require.NoError(t, client.AppendRecord(context.Background(), record))

	assert.True(t, strings.HasPrefix(gotPath, "/v4/spreadsheets/sheet-1/values/A:E:append"), gotPath)
	assert.Contains(t, gotQuery, "valueInputOption=USER_ENTERED")
	require.Len(t, gotBody.Values, 1)
	assert.Equal(t, []interface{}{"2024-03-15", "스타벅스 강남점", float64(9000), "식비", "카드"}, gotBody.Values[0])
}

func TestAppendRecordFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusForbidden)
		_, _ = io.WriteString(w, `{"error":{"code":403,"message":"The caller does not have permission"}}`)
	}))
	defer srv.Close()

	client, err := NewWithOptions(context.Background(), "sheet-1", "Sheet1!A:E",
		option.WithEndpoint(srv.URL+"/"),
		option.WithoutAuthentication(),
		option.WithHTTPClient(srv.Client()),
	)
	require.NoError(t, err)

	err = client.AppendRecord(context.Background(), entity.ReceiptRecord{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "permission")
}

func TestNewWithOptionsRequiresSpreadsheetID(t *testing.T) {
	_, err := NewWithOptions(context.Background(), "", "")
	assert.Error(t, err)
}
