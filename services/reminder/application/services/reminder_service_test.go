package services

//go:generate mockgen -source=ports.go -destination=mocks/mocks.go -package=mocks WeatherProvider,Sender

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"cloud.google.com/go/civil"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/ghuser/wardrobe/pkg/logger"
	catsvcs "github.com/ghuser/wardrobe/services/catalog/application/services"
	catmodels "github.com/ghuser/wardrobe/services/catalog/domain/models"
	catmemory "github.com/ghuser/wardrobe/services/catalog/infrastructure/persistence/memory"
	outfitsvcs "github.com/ghuser/wardrobe/services/outfit/application/services"
	outfitmemory "github.com/ghuser/wardrobe/services/outfit/infrastructure/persistence/memory"
	"github.com/ghuser/wardrobe/services/reminder/application/services/mocks"
	reminderdomain "github.com/ghuser/wardrobe/services/reminder/domain"
	"github.com/ghuser/wardrobe/services/reminder/domain/models"
	taxsvcs "github.com/ghuser/wardrobe/services/taxonomy/application/services"
	taxmemory "github.com/ghuser/wardrobe/services/taxonomy/infrastructure/persistence/memory"
	usermodels "github.com/ghuser/wardrobe/services/user/domain/models"
	usermemory "github.com/ghuser/wardrobe/services/user/infrastructure/persistence/memory"
)

var (
	taipei = time.FixedZone("UTC+8", 8*60*60)
	monday = civil.Date{Year: 2025, Month: 1, Day: 6}
)

type ReminderSuite struct {
	suite.Suite
	ctx       context.Context
	users     *usermemory.UserRepository
	catalog   *catsvcs.ClothingService
	planner   *outfitsvcs.PlannerService
	locations *taxsvcs.LocationService
	weather   *mocks.MockWeatherProvider
	sender    *mocks.MockSender
	svc       *ReminderService
}

func TestReminderSuite(t *testing.T) {
	suite.Run(t, new(ReminderSuite))
}

func (s *ReminderSuite) SetupTest() {
	ctrl := gomock.NewController(s.T())
	s.ctx = context.Background()
	s.users = usermemory.NewUserRepository()
	s.catalog = catsvcs.NewClothingService(catmemory.NewClothingRepository(), nil, nil, logger.Discard())
	s.planner = outfitsvcs.NewPlannerService(outfitmemory.NewOutfitRepository(), s.catalog, taipei)
	s.locations = taxsvcs.NewLocationService(taxmemory.NewLocationRepository())
	s.weather = mocks.NewMockWeatherProvider(ctrl)
	s.sender = mocks.NewMockSender(ctrl)

	s.svc = NewReminderService(s.users, s.planner, s.locations, s.weather, s.sender, logger.Discard(), Options{
		Location:    taipei,
		DefaultCity: "Tainan",
	})
	s.svc.now = func() time.Time { return time.Date(2025, 1, 6, 7, 0, 0, 0, taipei) }
}

func (s *ReminderSuite) user(name, email, at string, enabled bool) *usermodels.User {
	u := &usermodels.User{
		ID:               uuid.New(),
		Username:         name,
		PasswordHash:     "x",
		Email:            email,
		ReminderTime:     at,
		RemindersEnabled: enabled,
	}
	s.Require().NoError(s.users.Create(s.ctx, u))
	return u
}

func (s *ReminderSuite) plan(owner uuid.UUID, date civil.Date) {
	item, err := s.catalog.Add(s.ctx, owner, catmodels.Draft{
		Category:  "top",
		Color:     "white",
		Material:  "shirt",
		SubType:   "long-sleeve",
		Seasons:   []string{"winter"},
		Occasions: []string{"work"},
	})
	s.Require().NoError(err)
	_, err = s.planner.Save(s.ctx, owner, date, []int64{item.ID, 404})
	s.Require().NoError(err)
}

func (s *ReminderSuite) TestSendForUserWithWeather() {
	u := s.user("alice", "alice@example.com", "07:00", true)
	s.Require().NoError(s.locations.SeedDefaults(s.ctx, u.ID))
	s.plan(u.ID, monday)

	s.weather.EXPECT().Forecast(gomock.Any(), "Taishan", 1).Return([]models.DailyForecast{
		{Date: monday, TempMin: 14, TempMax: 19, Description: "Light rain", RainProbability: 70},
	}, nil)
	var sent models.Message
	s.sender.EXPECT().Send(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, m models.Message) error {
		sent = m
		return nil
	})

	s.Require().NoError(s.svc.SendForUser(s.ctx, u.ID, monday))
	s.Equal("alice@example.com", sent.To)
	s.Contains(sent.TextBody, "1. top - white / shirt / long-sleeve\n")
	s.NotContains(sent.TextBody, "2.")
	s.Contains(sent.TextBody, "14°C ~ 19°C")
	s.Contains(sent.TextBody, "umbrella")
	s.Contains(sent.HTMLBody, "Taishan")
}

func (s *ReminderSuite) TestSendForUserWithoutWeather() {
	u := s.user("alice", "alice@example.com", "07:00", true)

	s.weather.EXPECT().Forecast(gomock.Any(), "Tainan", 1).Return(nil, errors.New("upstream down"))
	var sent models.Message
	s.sender.EXPECT().Send(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, m models.Message) error {
		sent = m
		return nil
	})

	s.Require().NoError(s.svc.SendForUser(s.ctx, u.ID, monday))
	s.NotContains(sent.TextBody, "Temperature")
	s.Contains(sent.TextBody, "Nothing planned")
}

func (s *ReminderSuite) TestSendForUserRequiresEmail() {
	u := s.user("bob", "", "07:00", true)
	s.ErrorIs(s.svc.SendForUser(s.ctx, u.ID, monday), reminderdomain.ErrNoEmail)
}

func (s *ReminderSuite) TestFarFutureDateSkipsForecast() {
	u := s.user("alice", "alice@example.com", "07:00", true)
	s.sender.EXPECT().Send(gomock.Any(), gomock.Any()).Return(nil)

	s.Require().NoError(s.svc.SendForUser(s.ctx, u.ID, monday.AddDays(30)))
}

func (s *ReminderSuite) TestSendFailureIsReturned() {
	u := s.user("alice", "alice@example.com", "07:00", true)
	s.weather.EXPECT().Forecast(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
	s.sender.EXPECT().Send(gomock.Any(), gomock.Any()).Return(errors.New("smtp down"))

	s.ErrorContains(s.svc.SendForUser(s.ctx, u.ID, monday), "smtp down")
}

func (s *ReminderSuite) TestDispatchDue() {
	alice := s.user("alice", "alice@example.com", "07:00", true)
	s.user("bob", "bob@example.com", "07:00", true)
	s.user("carol", "carol@example.com", "07:30", true)
	s.user("dave", "dave@example.com", "07:00", false)
	s.user("erin", "", "07:00", true)
	s.plan(alice.ID, monday)

	s.weather.EXPECT().Forecast(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("offline")).AnyTimes()
	var (
		mu         sync.Mutex
		recipients []string
	)
	s.sender.EXPECT().Send(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, m models.Message) error {
		mu.Lock()
		recipients = append(recipients, m.To)
		mu.Unlock()
		if m.To == "bob@example.com" {
			return errors.New("mailbox full")
		}
		return nil
	}).Times(2)

	// 23:00 UTC is 07:00 the next morning in UTC+8.
	res, err := s.svc.DispatchDue(s.ctx, time.Date(2025, 1, 5, 23, 0, 0, 0, time.UTC))
	s.Require().NoError(err)
	s.Equal(DispatchResult{Due: 2, Sent: 1, Failed: 1}, res)
	s.ElementsMatch([]string{"alice@example.com", "bob@example.com"}, recipients)
}

func (s *ReminderSuite) TestDispatchDueNobodyDue() {
	s.user("alice", "alice@example.com", "07:00", true)

	res, err := s.svc.DispatchDue(s.ctx, time.Date(2025, 1, 6, 9, 0, 0, 0, taipei))
	s.Require().NoError(err)
	s.Equal(DispatchResult{}, res)
}

func (s *ReminderSuite) TestForecastUsesPrimaryCity() {
	u := s.user("alice", "alice@example.com", "07:00", true)
	_, err := s.locations.Add(s.ctx, u.ID, "Kaohsiung")
	s.Require().NoError(err)

	s.weather.EXPECT().Forecast(gomock.Any(), "Kaohsiung", 16).Return([]models.DailyForecast{{Date: monday}}, nil)
	city, forecasts, err := s.svc.Forecast(s.ctx, u.ID, 99)
	s.Require().NoError(err)
	s.Equal("Kaohsiung", city)
	s.Len(forecasts, 1)
}
