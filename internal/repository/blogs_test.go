package repository

import (
	"testing"

	"gamescove/internal/models"
)

func TestBlogsIncrementViews(t *testing.T) {
	repos := New(newTestDB(t))

	post := models.BlogPost{Title: "Hands On", Slug: "hands-on", Content: "body"}
	if err := repos.Blogs.Create(&post); err != nil {
		t.Fatalf("Create: %v", err)
	}

	for i := 0; i < 3; i++ {
		if err := repos.Blogs.IncrementViews(post.ID); err != nil {
			t.Fatalf("IncrementViews: %v", err)
		}
	}

	got, err := repos.Blogs.ByID(post.ID)
	if err != nil {
		t.Fatalf("ByID: %v", err)
	}
	if got.ViewCount != 3 {
		t.Errorf("view_count = %d, want 3", got.ViewCount)
	}
}

func TestBlogsAllAscendingOrder(t *testing.T) {
	repos := New(newTestDB(t))

	for _, title := range []string{"Zeta", "Alpha", "Mid"} {
		slug, err := repos.Blogs.UniqueSlug(title, 0)
		if err != nil {
			t.Fatalf("UniqueSlug: %v", err)
		}
		post := models.BlogPost{Title: title, Slug: slug, Content: "body"}
		if err := repos.Blogs.Create(&post); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	posts, err := repos.Blogs.All()
	if err != nil {
		t.Fatalf("All: %v", err)
	}
	if len(posts) != 3 {
		t.Fatalf("got %d posts, want 3", len(posts))
	}
	for i := 1; i < len(posts); i++ {
		if posts[i-1].ID > posts[i].ID {
			t.Errorf("posts not in ascending id order")
		}
	}
}
