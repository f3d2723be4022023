package main

import (
	"flag"
	"log"
	"os"

	"github.com/dasomcenter/dasom-api/internal/config"
	"github.com/dasomcenter/dasom-api/internal/config/db"
	"github.com/dasomcenter/dasom-api/internal/domain/category"
	"github.com/dasomcenter/dasom-api/internal/domain/form"
	"github.com/dasomcenter/dasom-api/internal/domain/formspec"
	"github.com/dasomcenter/dasom-api/internal/domain/program"
	"github.com/dasomcenter/dasom-api/internal/domain/user"
	"github.com/dasomcenter/dasom-api/internal/repository"
	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v2"
	"gorm.io/gorm"
)

type seedFile struct {
	Users []struct {
		Username string `yaml:"username"`
		Password string `yaml:"password"`
		FullName string `yaml:"full_name"`
		Email    string `yaml:"email"`
		Role     string `yaml:"role"`
	} `yaml:"users"`
	Categories []struct {
		Name      string `yaml:"name"`
		Slug      string `yaml:"slug"`
		SortOrder int    `yaml:"sort_order"`
		Children  []struct {
			Name      string `yaml:"name"`
			Slug      string `yaml:"slug"`
			SortOrder int    `yaml:"sort_order"`
		} `yaml:"children"`
	} `yaml:"categories"`
	Programs []struct {
		Title   string   `yaml:"title"`
		Summary string   `yaml:"summary"`
		Status  string   `yaml:"status"`
		Tags    []string `yaml:"tags"`
		Form    *struct {
			Title  string `yaml:"title"`
			Fields []struct {
				Label    string   `yaml:"label"`
				Type     string   `yaml:"type"`
				Required bool     `yaml:"required"`
				Options  []string `yaml:"options"`
			} `yaml:"fields"`
		} `yaml:"form"`
	} `yaml:"programs"`
}

func main() {
	path := flag.String("f", "seed.yaml", "seed file path")
	flag.Parse()

	config.LoadConfig()
	db.Init()
	repos := repository.NewRepositories(db.DB)

	data, err := os.ReadFile(*path)
	if err != nil {
		log.Fatalf("Failed to read seed file: %v", err)
	}
	var seed seedFile
	if err := yaml.Unmarshal(data, &seed); err != nil {
		log.Fatalf("Failed to parse seed file: %v", err)
	}

	for _, u := range seed.Users {
		if _, err := repos.User.GetUserByUsername(u.Username); err == nil {
			log.Printf("user %s exists, skipping", u.Username)
			continue
		} else if err != gorm.ErrRecordNotFound {
			log.Fatalf("Failed to look up user %s: %v", u.Username, err)
		}
		hashed, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
		if err != nil {
			log.Fatalf("Failed to hash password for %s: %v", u.Username, err)
		}
		usr := user.User{
			Username: u.Username,
			Password: string(hashed),
			FullName: u.FullName,
			Email:    u.Email,
			Role:     u.Role,
		}
		if err := repos.User.SaveUser(&usr); err != nil {
			log.Fatalf("Failed to create user %s: %v", u.Username, err)
		}
		log.Printf("created user %s", u.Username)
	}

	for _, c := range seed.Categories {
		parent, err := upsertCategory(repos, category.Category{Name: c.Name, Slug: c.Slug, SortOrder: c.SortOrder})
		if err != nil {
			log.Fatalf("Failed to seed category %s: %v", c.Slug, err)
		}
		for _, child := range c.Children {
			pid := parent.CID
			if _, err := upsertCategory(repos, category.Category{
				ParentID:  &pid,
				Name:      child.Name,
				Slug:      child.Slug,
				SortOrder: child.SortOrder,
			}); err != nil {
				log.Fatalf("Failed to seed category %s: %v", child.Slug, err)
			}
		}
	}

	for _, p := range seed.Programs {
		status := p.Status
		if status == "" {
			status = program.StatusDraft
		}
		prg := program.Program{
			Title:   p.Title,
			Summary: p.Summary,
			Status:  status,
			Tags:    p.Tags,
		}
		if err := repos.Program.SaveProgram(&prg); err != nil {
			log.Fatalf("Failed to seed program %s: %v", p.Title, err)
		}
		log.Printf("created program %s", p.Title)

		if p.Form == nil {
			continue
		}
		spec := formspec.FormSpec{Title: p.Form.Title}
		for _, f := range p.Form.Fields {
			ft, err := formspec.ParseFieldType(f.Type)
			if err != nil {
				log.Fatalf("Program %s field %q: %v", p.Title, f.Label, err)
			}
			spec, err = formspec.AddField(spec, formspec.FieldDraft{
				Label:    f.Label,
				Type:     ft,
				Required: f.Required,
				Options:  f.Options,
			})
			if err != nil {
				log.Fatalf("Program %s field %q: %v", p.Title, f.Label, err)
			}
		}
		if err := spec.Validate(); err != nil {
			log.Fatalf("Program %s form: %v", p.Title, err)
		}
		rec, err := form.FromSpec(prg.PrgID, spec)
		if err != nil {
			log.Fatalf("Program %s form: %v", p.Title, err)
		}
		if err := repos.Form.SaveForm(&rec); err != nil {
			log.Fatalf("Failed to save form for %s: %v", p.Title, err)
		}
		log.Printf("created form for %s", p.Title)
	}
}

func upsertCategory(repos *repository.Repos, c category.Category) (category.Category, error) {
	existing, err := repos.Category.GetCategoryBySlug(c.Slug)
	if err == nil {
		return existing, nil
	}
	if err != gorm.ErrRecordNotFound {
		return category.Category{}, err
	}
	if err := repos.Category.SaveCategory(&c); err != nil {
		return category.Category{}, err
	}
	return c, nil
}
