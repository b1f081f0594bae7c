package integration

import (
	"context"
	"fmt"
	"log"
	"os"
	"testing"
	"time"

	"codementor-be/internal/entity"
	"codementor-be/internal/repository/specification"
	"codementor-be/internal/repository/unitofwork"
	"codementor-be/pkg/database"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
)

func TestGormConnection(t *testing.T) {
	// Load .env from root
	err := godotenv.Load("../../.env")
	if err != nil {
		log.Println("No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		t.Skip("Skipping integration test: DB_CONNECTION_STRING not set")
	}

	gormDB, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		t.Fatalf("Failed to connect to DB: %v", err)
	}

	// Verify Wiring
	uowFactory := unitofwork.NewRepositoryFactory(gormDB)
	uow := uowFactory.NewUnitOfWork(context.Background())

	assert.NotNil(t, uow.UserRepository())
	assert.NotNil(t, uow.CollaborationSessionRepository())

	// Basic Ping
	sqlDB, _ := gormDB.DB()
	err = sqlDB.Ping()
	assert.NoError(t, err)
	t.Log("Successfully connected to DB and initialized UnitOfWork Factory")

	// Verify Data Access (implies columns exist)
	t.Run("Check User Repository", func(t *testing.T) {
		count, err := uow.UserRepository().Count(context.Background())
		assert.NoError(t, err)
		t.Logf("User count: %d", count)
	})

	t.Run("Check Achievement Repository", func(t *testing.T) {
		count, err := uow.AchievementRepository().Count(context.Background())
		assert.NoError(t, err)
		t.Logf("Achievement count: %d", count)
	})

	t.Run("Check Transactional Session Participant", func(t *testing.T) {
		// A session plus its first participant must land atomically.
		user := &entity.User{
			Name:         "Integration Test User",
			Email:        "test-integration-" + uuid.New().String() + "@example.com",
			PasswordHash: "not-a-real-hash",
		}
		err := uow.UserRepository().Create(context.Background(), user)
		assert.NoError(t, err)

		ctx := context.Background()
		err = uow.Begin(ctx)
		assert.NoError(t, err)
		defer uow.Rollback()

		session := &entity.CollaborationSession{
			RoomCode: fmt.Sprintf("it%010d", time.Now().UnixNano()%1e10),
			Name:     "Integration Session",
			OwnerId:  user.Id,
			Language: "go",
			IsActive: true,
			Status:   entity.SessionStatusActive,
		}
		err = uow.CollaborationSessionRepository().Create(ctx, session)
		assert.NoError(t, err)

		participant := &entity.CollaborationParticipant{
			SessionId: session.Id,
			UserId:    user.Id,
			JoinedAt:  time.Now(),
			IsActive:  true,
		}
		err = uow.CollaborationParticipantRepository().Create(ctx, participant)
		assert.NoError(t, err)

		err = uow.Commit()
		assert.NoError(t, err)

		found, err := uow.CollaborationSessionRepository().FindOne(context.Background(),
			specification.ByRoomCode{RoomCode: session.RoomCode},
		)
		assert.NoError(t, err)
		if assert.NotNil(t, found) {
			assert.Equal(t, user.Id, found.OwnerId)
		}

		t.Log("Successfully created Session with Participant in Transaction")
	})
}
