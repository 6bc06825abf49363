//go:build integration

package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func postQuote(ctx context.Context, baseURL string, id int) (int, error) {
	payload := fmt.Sprintf(`{"id":%d,"quote":"quote %d","author":"author %d"}`, id, id, id)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, baseURL+"/quote", bytes.NewBufferString(payload))
	if err != nil {
		return 0, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	return resp.StatusCode, nil
}

func savedIDs(t *testing.T, baseURL string) []int64 {
	t.Helper()

	resp, err := http.Get(baseURL + "/quote/saved")
	require.NoError(t, err)
	defer resp.Body.Close()

	var quotes []struct {
		ID int64 `json:"id"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&quotes))

	ids := make([]int64, 0, len(quotes))
	for _, q := range quotes {
		ids = append(ids, q.ID)
	}

	return ids
}

// TestConcurrent_DuplicateSaves verifies that racing saves of one quote
// store it exactly once.
func TestConcurrent_DuplicateSaves(t *testing.T) {
	h, err := newHarness()
	require.NoError(t, err)
	defer h.Close()

	const numGoroutines = 50
	var wg sync.WaitGroup
	var okCount, conflictCount, errorCount int32

	for i := 0; i < numGoroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			status, err := postQuote(context.Background(), h.URL(), 1)
			switch {
			case err != nil:
				atomic.AddInt32(&errorCount, 1)
			case status == http.StatusOK:
				atomic.AddInt32(&okCount, 1)
			case status == http.StatusInternalServerError:
				atomic.AddInt32(&conflictCount, 1)
			}
		}()
	}

	wg.Wait()

	assert.Equal(t, int32(0), atomic.LoadInt32(&errorCount), "no transport errors expected")
	assert.Equal(t, int32(1), atomic.LoadInt32(&okCount), "exactly one save should win")
	assert.Equal(t, int32(numGoroutines-1), atomic.LoadInt32(&conflictCount), "the rest should conflict")
	assert.Equal(t, []int64{1}, savedIDs(t, h.URL()))
}

// TestConcurrent_DistinctSaves verifies that concurrent saves of distinct
// quotes are all kept.
func TestConcurrent_DistinctSaves(t *testing.T) {
	h, err := newHarness()
	require.NoError(t, err)
	defer h.Close()

	const numGoroutines = 25
	var wg sync.WaitGroup
	var okCount int32

	for i := 1; i <= numGoroutines; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			status, err := postQuote(context.Background(), h.URL(), id)
			if err == nil && status == http.StatusOK {
				atomic.AddInt32(&okCount, 1)
			}
		}(i)
	}

	wg.Wait()

	assert.Equal(t, int32(numGoroutines), atomic.LoadInt32(&okCount))

	ids := savedIDs(t, h.URL())
	assert.Len(t, ids, numGoroutines)
	assert.ElementsMatch(t, func() []int64 {
		want := make([]int64, 0, numGoroutines)
		for i := 1; i <= numGoroutines; i++ {
			want = append(want, int64(i))
		}
		return want
	}(), ids)
}

// TestConcurrent_FetchesAndSaves mixes quote fetches with saves.
func TestConcurrent_FetchesAndSaves(t *testing.T) {
	h, err := newHarness()
	require.NoError(t, err)
	defer h.Close()

	const numGoroutines = 20
	var wg sync.WaitGroup
	var fetchOK, saveOK int32

	for i := 0; i < numGoroutines; i++ {
		wg.Add(2)

		go func() {
			defer wg.Done()
			resp, err := http.Get(h.URL() + "/quote")
			if err != nil {
				return
			}
			resp.Body.Close()
			if resp.StatusCode == http.StatusOK {
				atomic.AddInt32(&fetchOK, 1)
			}
		}()

		go func(id int) {
			defer wg.Done()
			status, err := postQuote(context.Background(), h.URL(), id)
			if err == nil && status == http.StatusOK {
				atomic.AddInt32(&saveOK, 1)
			}
		}(i + 1)
	}

	wg.Wait()

	assert.Equal(t, int32(numGoroutines), atomic.LoadInt32(&fetchOK))
	assert.Equal(t, int32(numGoroutines), atomic.LoadInt32(&saveOK))
	assert.GreaterOrEqual(t, h.upstream.calls.Load(), int32(numGoroutines))
}
