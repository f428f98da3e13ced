package intent_test

import (
	"testing"
	"time"

	"github.com/blc10/research-assistant/internal/intent"
	"github.com/blc10/research-assistant/internal/model"
)

func taskIDs(tasks []model.Task) []int64 {
	ids := make([]int64, 0, len(tasks))
	for _, task := range tasks {
		ids = append(ids, task.ID)
	}
	return ids
}

func TestResolve(t *testing.T) {
	resolver := intent.NewResolver()
	due := time.Date(2024, 5, 3, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		query   string
		tasks   []model.Task
		limit   int
		wantIDs []int64
	}{
		{
			name:  "Query keeps only matching tasks",
			query: "danışman",
			tasks: []model.Task{
				{ID: 1, Title: "Danışman toplantısı"},
				{ID: 2, Title: "Market alışverişi"},
			},
			limit:   5,
			wantIDs: []int64{1},
		},
		{
			name:  "Substring match outranks token overlap",
			query: "tez önerisi",
			tasks: []model.Task{
				{ID: 1, Title: "Tez taslağını gözden geçir"},
				{ID: 2, Title: "Tez önerisi gönderilecek"},
			},
			limit:   5,
			wantIDs: []int64{2, 1},
		},
		{
			name:  "Equal score ranks dated task first",
			query: "rapor",
			tasks: []model.Task{
				{ID: 1, Title: "Rapor yaz"},
				{ID: 2, Title: "Rapor gönder", DueAt: &due},
			},
			limit:   5,
			wantIDs: []int64{2, 1},
		},
		{
			name:  "Empty query returns first tasks unfiltered",
			query: "",
			tasks: []model.Task{
				{ID: 1, Title: "a"}, {ID: 2, Title: "b"}, {ID: 3, Title: "c"},
			},
			limit:   2,
			wantIDs: []int64{1, 2},
		},
		{
			name:  "Limit truncates ranked candidates",
			query: "makale",
			tasks: []model.Task{
				{ID: 1, Title: "Makale oku"},
				{ID: 2, Title: "Makale özetle"},
				{ID: 3, Title: "Makale gönder"},
			},
			limit:   2,
			wantIDs: []int64{1, 2},
		},
		{
			name:    "No match drops everything",
			query:   "yüzme",
			tasks:   []model.Task{{ID: 1, Title: "Danışman toplantısı"}},
			limit:   5,
			wantIDs: nil,
		},
		{
			name:    "Case folding is Turkish aware",
			query:   "DANIŞMAN",
			tasks:   []model.Task{{ID: 1, Title: "danışman toplantısı"}},
			limit:   5,
			wantIDs: []int64{1},
		},
		{
			name:    "No open tasks",
			query:   "danışman",
			tasks:   nil,
			limit:   5,
			wantIDs: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := taskIDs(resolver.Resolve(tt.query, tt.tasks, tt.limit))
			if len(got) != len(tt.wantIDs) {
				t.Fatalf("Resolve(%q) = %v, want %v", tt.query, got, tt.wantIDs)
			}
			for i := range got {
				if got[i] != tt.wantIDs[i] {
					t.Fatalf("Resolve(%q) = %v, want %v", tt.query, got, tt.wantIDs)
				}
			}
		})
	}
}

func TestExtractActionQuery(t *testing.T) {
	deleteWords := intent.DefaultKeywords().Delete

	tests := []struct {
		name string
		text string
		want string
	}{
		{
			name: "Action word and noise stripped",
			text: "Danışman toplantısını sil",
			want: "danışman toplantısını",
		},
		{
			name: "Consecutive noise words all stripped",
			text: "şu görevi sil",
			want: "",
		},
		{
			name: "Task id token stripped",
			text: "sil #12",
			want: "",
		},
		{
			name: "Residual wording survives",
			text: "market alışverişi hatırlatmayı kaldır",
			want: "market alışverişi",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := intent.ExtractActionQuery(tt.text, deleteWords); got != tt.want {
				t.Errorf("ExtractActionQuery(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}
