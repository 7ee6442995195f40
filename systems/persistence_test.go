package systems

import (
	"errors"
	"testing"

	"github.com/automoto/fruitrang/shared/scoring"
)

type memStore map[string][]byte

func (m memStore) LoadItem(key string) ([]byte, error) { return m[key], nil }

func (m memStore) SaveItem(key string, data []byte) error {
	m[key] = data
	return nil
}

type failingStore struct{}

func (failingStore) LoadItem(string) ([]byte, error) { return nil, errors.New("disk gone") }
func (failingStore) SaveItem(string, []byte) error   { return errors.New("disk gone") }

func useStore(t *testing.T, s itemStore) {
	t.Helper()
	saved := store
	store = s
	t.Cleanup(func() { store = saved })
}

func TestSaveResultsTracksBest(t *testing.T) {
	useStore(t, memStore{})

	if got := LoadBestScore(); got != 0 {
		t.Fatalf("empty best = %d", got)
	}

	first := SavedResults{End: "time up", Result: scoring.Result{Score: 40}, Throws: 3}
	if err := SaveResults(&first); err != nil {
		t.Fatal(err)
	}
	if !first.NewBest || LoadBestScore() != 40 {
		t.Errorf("first round: newBest=%v best=%d", first.NewBest, LoadBestScore())
	}

	worse := SavedResults{End: "bowls filled", Result: scoring.Result{Score: 10}}
	if err := SaveResults(&worse); err != nil {
		t.Fatal(err)
	}
	if worse.NewBest || LoadBestScore() != 40 {
		t.Errorf("worse round: newBest=%v best=%d", worse.NewBest, LoadBestScore())
	}

	last, err := LoadLastResults()
	if err != nil {
		t.Fatal(err)
	}
	if last == nil || last.End != "bowls filled" || last.Result.Score != 10 {
		t.Errorf("last results = %+v", last)
	}
}

func TestPersistenceWithoutStorage(t *testing.T) {
	useStore(t, nil)
	if err := SaveResults(&SavedResults{}); err != nil {
		t.Errorf("save without storage: %v", err)
	}
	if res, err := LoadLastResults(); res != nil || err != nil {
		t.Errorf("load without storage = %v, %v", res, err)
	}
}

func TestPersistenceStorageErrors(t *testing.T) {
	useStore(t, failingStore{})
	if LoadBestScore() != 0 {
		t.Error("best score from a failing store")
	}
	if err := SaveResults(&SavedResults{Result: scoring.Result{Score: 1}}); err == nil {
		t.Error("expected save error")
	}
}

func TestCorruptResults(t *testing.T) {
	useStore(t, memStore{"last_results": []byte("{")})
	if _, err := LoadLastResults(); err == nil {
		t.Error("expected parse error")
	}
}
