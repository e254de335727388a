package implementation

import (
	"context"
	"log"
	"os"
	"testing"
	"time"

	"chitty-gateway/internal/entity"
	"chitty-gateway/internal/model"
	"chitty-gateway/pkg/database"
	"chitty-gateway/pkg/idgen"

	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordIndexRepository_Postgres(t *testing.T) {
	if err := godotenv.Load("../../../.env"); err != nil {
		log.Println("No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		t.Skip("Skipping integration test: DB_CONNECTION_STRING not set")
	}

	db, err := database.NewGormDBFromDSN(dsn)
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.Record{}))

	ctx := context.Background()
	require.NoError(t, database.Ping(ctx, db))

	repo := NewRecordIndexRepository(db)
	domain := "it-" + idgen.Generate("t")

	older := &entity.Record{
		Id:         idgen.Chitty("test"),
		Domain:     domain,
		Status:     "active",
		Data:       map[string]interface{}{"title": "older"},
		SecretHash: "never-stored",
		CreatedAt:  time.Now().UTC().Add(-time.Minute),
	}
	newer := &entity.Record{
		Id:        idgen.Chitty("test"),
		Domain:    domain,
		Status:    "active",
		Data:      map[string]interface{}{"title": "newer"},
		CreatedAt: time.Now().UTC(),
	}
	require.NoError(t, repo.Create(ctx, older))
	require.NoError(t, repo.Create(ctx, newer))
	t.Cleanup(func() {
		db.Where("domain = ?", domain).Delete(&model.Record{})
	})

	records, err := repo.FindAllByDomain(ctx, domain, 10)
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, newer.Id, records[0].Id)
	assert.Equal(t, "newer", records[0].Data["title"])
	assert.Equal(t, older.Id, records[1].Id)
	assert.Empty(t, records[1].SecretHash)

	limited, err := repo.FindAllByDomain(ctx, domain, 1)
	require.NoError(t, err)
	assert.Len(t, limited, 1)
}
