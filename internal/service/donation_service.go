package service

import (
	"encoding/json"
	"time"

	"crowdfunding/internal/model"
	"crowdfunding/internal/pkg"
	"crowdfunding/internal/repository/mysql"
)

type DonationService struct {
	repo     *mysql.DonationRepository
	projects *mysql.ProjectRepository
}

func NewDonationService() *DonationService {
	return &DonationService{
		repo:     &mysql.DonationRepository{},
		projects: &mysql.ProjectRepository{},
	}
}

type donationEvent struct {
	ProjectID uint64    `json:"project_id"`
	UserID    uint64    `json:"user_id"`
	Amount    float64   `json:"amount"`
	DonatedAt time.Time `json:"donated_at"`
}

// Donate 捐款落库并写入事件表，由 relayer 异步投递
func (s *DonationService) Donate(actor pkg.Actor, projectID uint64, amount float64) (*model.Donation, error) {
	if err := actor.Require(pkg.Authenticated, 0); err != nil {
		return nil, err
	}

	errs := pkg.RunChecks(
		pkg.FieldCheck{Field: "amount", Check: func() string { return pkg.CheckDonationAmount(amount) }},
	)
	if errs.Has() {
		return nil, errs
	}

	if _, err := s.projects.FindByID(projectID); err != nil {
		return nil, err
	}

	userID := actor.UserID
	d := &model.Donation{
		UserID:    &userID,
		ProjectID: projectID,
		Amount:    amount,
	}

	payload, err := json.Marshal(donationEvent{
		ProjectID: projectID,
		UserID:    userID,
		Amount:    amount,
		DonatedAt: time.Now(),
	})
	if err != nil {
		return nil, err
	}

	if err = s.repo.CreateWithOutbox(d, string(payload)); err != nil {
		return nil, err
	}
	return d, nil
}

// List projectID=0 时返回全部捐款
func (s *DonationService) List(projectID uint64) ([]model.Donation, error) {
	if projectID == 0 {
		return s.repo.ListAll()
	}
	if _, err := s.projects.FindByID(projectID); err != nil {
		return nil, err
	}
	return s.repo.ListByProject(projectID)
}

func (s *DonationService) Get(id uint64) (*model.Donation, error) {
	return s.repo.FindByID(id)
}
