package seed

import (
	"log"

	"github.com/thethao247/backend/models"
	"github.com/thethao247/backend/repository"
)

// Run fills an empty database with a demo admin, a regular reader and a
// handful of articles so the frontend has something to show out of the box.
// It does nothing when articles already exist.
func Run(users repository.UserRepository, articles repository.ArticleRepository) error {
	count, err := articles.CountArticles()
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	log.Println("Seeding sample data...")

	admin := &models.User{
		Name:   "Admin",
		Email:  "admin@thethao247.vn",
		Avatar: "A",
		Role:   models.RoleAdmin,
	}
	if err := users.CreateUser(admin, "admin123"); err != nil {
		return err
	}

	reader := &models.User{
		Name:   "Nguyen Van A",
		Email:  "user@example.com",
		Avatar: "N",
		Role:   models.RoleUser,
	}
	if err := users.CreateUser(reader, "123456"); err != nil {
		return err
	}

	samples := []*models.Article{
		{
			Title:    "Ronaldo nets a hat-trick and breaks the 800-goal barrier",
			Category: "Football",
			Content:  "Cristiano Ronaldo underlined his class once again with an emphatic hat-trick that pushed his career tally past 800 goals...",
			Excerpt:  "The Portuguese superstar scored a historic hat-trick in last night's match",
			ImageURL: "https://images.unsplash.com/photo-1508098682722-e99c43a406b2?w=800&h=600&fit=crop",
			AuthorID: admin.ID,
		},
		{
			Title:    "Quang Hai shines in the AFC Champions League",
			Category: "Vietnamese Football",
			Content:  "Midfielder Nguyen Quang Hai produced an impressive display as his side booked their place in the next round...",
			Excerpt:  "The CAHN star scored a superb goal to hand his team the win",
			ImageURL: "https://images.unsplash.com/photo-1574068468668-a05a11f871da?w=800&h=600&fit=crop",
			AuthorID: admin.ID,
		},
		{
			Title:    "Djokovic vs Nadal: a classic showdown at the Australian Open",
			Category: "Tennis",
			Content:  "Two of the greatest players in tennis history will meet in the semi-final for the sixtieth time...",
			Excerpt:  "The 60th meeting between the two greatest players of all time",
			ImageURL: "https://images.unsplash.com/photo-1554068865-24cecd4e34b8?w=800&h=600&fit=crop",
			AuthorID: admin.ID,
		},
		{
			Title:    "LeBron James reaches 40,000 career points",
			Category: "Basketball",
			Content:  "The LA Lakers star keeps rewriting NBA history, becoming the first player ever to cross the 40,000-point mark...",
			Excerpt:  "King James becomes the first player to reach 40,000 points",
			ImageURL: "https://images.unsplash.com/photo-1519861531473-9200262188bf?w=800&h=600&fit=crop",
			AuthorID: admin.ID,
		},
		{
			Title:    "Verstappen dominates the Monaco Grand Prix",
			Category: "Formula 1",
			Content:  "The Red Bull Racing driver took pole position and converted it into a commanding lights-to-flag victory...",
			Excerpt:  "Verstappen extends his remarkable run of form this season",
			ImageURL: "https://images.unsplash.com/photo-1586985289688-ca3cf47d3e6e?w=800&h=600&fit=crop",
			AuthorID: admin.ID,
		},
	}

	for _, article := range samples {
		if err := articles.CreateArticle(article); err != nil {
			return err
		}
	}

	log.Println("✅ Sample data created!")
	log.Println("👤 Admin: admin@thethao247.vn / admin123")
	log.Println("👤 User: user@example.com / 123456")
	return nil
}
