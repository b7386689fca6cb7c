package charity

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"gorm.io/gorm"

	donationModel "charity_backend/internals/features/charity/donations/model"
	donationService "charity_backend/internals/features/charity/donations/service"
	projectModel "charity_backend/internals/features/charity/projects/model"
	helper "charity_backend/internals/helpers"
)

type ProjectSeed struct {
	Name                  string  `json:"name"`
	Slug                  string  `json:"slug"`
	ShortDescription      string  `json:"short_description"`
	Status                string  `json:"status"`
	LaunchDate            string  `json:"launch_date"`
	AdditionalDescription *string `json:"additional_description"`
	SortOrder             int     `json:"sort_order"`
}

type DonationSeed struct {
	ProjectSlug  string  `json:"project_slug"`
	Amount       int64   `json:"amount"`
	DonationDate string  `json:"donation_date"`
	Comment      *string `json:"comment"`
}

type SeedFile struct {
	Projects  []ProjectSeed  `json:"projects"`
	Donations []DonationSeed `json:"donations"`
}

type Result struct {
	ProjectsCreated  int
	ProjectsSkipped  int
	DonationsCreated int
}

// SeedCharityFromJSON reads filePath and applies it with SeedCharity.
func SeedCharityFromJSON(db *gorm.DB, filePath string) (Result, error) {
	log.Println("📥 Reading seed file:", filePath)

	raw, err := os.ReadFile(filePath)
	if err != nil {
		return Result{}, fmt.Errorf("read seed file: %w", err)
	}
	var data SeedFile
	if err := sonic.Unmarshal(raw, &data); err != nil {
		return Result{}, fmt.Errorf("decode seed file: %w", err)
	}
	return SeedCharity(db, data, time.Now())
}

// SeedCharity inserts projects (skipping slugs that already exist) and their
// donations, then recomputes donation_amount of every touched project. All or nothing.
func SeedCharity(db *gorm.DB, data SeedFile, now time.Time) (Result, error) {
	var res Result
	err := db.Transaction(func(tx *gorm.DB) error {
		ids := map[string]uint64{}

		for i, p := range data.Projects {
			m, err := p.toModel()
			if err != nil {
				return fmt.Errorf("project #%d: %w", i+1, err)
			}

			var existing projectModel.CharityProject
			err = tx.Where("slug = ?", m.Slug).First(&existing).Error
			switch {
			case err == nil:
				log.Printf("ℹ️ Project with slug %s already exists, skipping...", m.Slug)
				ids[m.Slug] = existing.ID
				res.ProjectsSkipped++
				continue
			case !errors.Is(err, gorm.ErrRecordNotFound):
				return err
			}

			if err := tx.Create(m).Error; err != nil {
				return fmt.Errorf("insert project %s: %w", m.Slug, err)
			}
			ids[m.Slug] = m.ID
			res.ProjectsCreated++
			log.Printf("✅ Inserted project %s (%s)", m.Name, m.Slug)
		}

		touched := map[uint64]struct{}{}
		for i, d := range data.Donations {
			slug := strings.TrimSpace(d.ProjectSlug)
			id, ok := ids[slug]
			if !ok {
				var p projectModel.CharityProject
				if err := tx.Where("slug = ?", slug).First(&p).Error; err != nil {
					return fmt.Errorf("donation #%d: project %q: %w", i+1, slug, err)
				}
				id = p.ID
				ids[slug] = id
			}
			if d.Amount < 1 {
				return fmt.Errorf("donation #%d: amount must be at least 1", i+1)
			}
			date := now
			if strings.TrimSpace(d.DonationDate) != "" {
				t, err := helper.ParseFlexibleTime(d.DonationDate, time.UTC)
				if err != nil {
					return fmt.Errorf("donation #%d: %w", i+1, err)
				}
				date = t
			}
			row := donationModel.Donation{
				CharityProjectID: id,
				Amount:           d.Amount,
				DonationDate:     date,
				Comment:          d.Comment,
			}
			if err := tx.Create(&row).Error; err != nil {
				return fmt.Errorf("insert donation #%d: %w", i+1, err)
			}
			touched[id] = struct{}{}
			res.DonationsCreated++
		}

		for id := range touched {
			if _, err := donationService.RecomputeDonationAmount(tx, id); err != nil {
				return fmt.Errorf("recompute project %d: %w", id, err)
			}
		}
		return nil
	})
	if err != nil {
		return Result{}, err
	}
	log.Printf("🌱 Seed done: %d projects created, %d skipped, %d donations", res.ProjectsCreated, res.ProjectsSkipped, res.DonationsCreated)
	return res, nil
}

func (p ProjectSeed) toModel() (*projectModel.CharityProject, error) {
	name := strings.TrimSpace(p.Name)
	if name == "" {
		return nil, errors.New("name is required")
	}
	slug := strings.TrimSpace(p.Slug)
	if slug == "" || !helper.IsSlug(slug) {
		base := slug
		if base == "" {
			base = name
		}
		slug = helper.Slugify(base, helper.DefaultSlugMaxLen)
	}
	status := strings.ToLower(strings.TrimSpace(p.Status))
	if status == "" {
		status = projectModel.ProjectStatusDraft
	}
	if !projectModel.IsValidStatus(status) {
		return nil, fmt.Errorf("invalid status %q", p.Status)
	}
	launch, err := helper.ParseFlexibleTime(p.LaunchDate, time.UTC)
	if err != nil {
		return nil, fmt.Errorf("launch_date: %w", err)
	}
	sortOrder := p.SortOrder
	if sortOrder == 0 {
		sortOrder = projectModel.DefaultSortOrder
	}
	return &projectModel.CharityProject{
		Name:                  name,
		Slug:                  slug,
		ShortDescription:      p.ShortDescription,
		Status:                status,
		LaunchDate:            launch,
		AdditionalDescription: p.AdditionalDescription,
		SortOrder:             sortOrder,
	}, nil
}
