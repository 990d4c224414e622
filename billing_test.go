package polydub

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestUsage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/billing/usage" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.Write([]byte(`{"plan":"pro","creditsUsed":12.5,"creditsRemaining":87.5,"periodEndsAt":"2024-04-01T00:00:00Z"}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	usage, err := client.Usage(context.Background())
	if err != nil {
		t.Fatalf("Usage failed: %v", err)
	}
	if usage.CreditsUsed != 12.5 || usage.CreditsRemaining != 87.5 {
		t.Errorf("unexpected usage: %+v", usage)
	}
	if usage.PeriodEndsAt == nil {
		t.Error("expected periodEndsAt decoded")
	}
}

func TestUsageHistoryPagination(t *testing.T) {
	var gotQuery string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/billing/usage-history" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		gotQuery = r.URL.RawQuery
		w.Write([]byte(`{"data":[{"jobId":"j1","credits":2.5,"createdAt":"2024-03-01T12:00:00Z"}],"total":31}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	page, err := client.UsageHistory(context.Background(), &UsageHistoryOptions{Offset: 30, Limit: 10})
	if err != nil {
		t.Fatalf("UsageHistory failed: %v", err)
	}
	if gotQuery != "limit=10&offset=30" && gotQuery != "offset=30&limit=10" {
		t.Errorf("unexpected query %q", gotQuery)
	}
	if page.Total != 31 || len(page.Records) != 1 {
		t.Errorf("unexpected page: %+v", page)
	}
	if page.Records[0].CreatedAt.IsZero() {
		t.Error("expected createdAt decoded")
	}
}
