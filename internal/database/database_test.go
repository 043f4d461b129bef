package database

import (
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/coursekit/video-api/internal/models"
	"github.com/coursekit/video-api/pkg/config"
)

func memoryConfig() config.DatabaseConfig {
	return config.DatabaseConfig{Path: ":memory:"}
}

func TestInitialize(t *testing.T) {
	tests := []struct {
		name    string
		cfg     config.DatabaseConfig
		wantErr bool
	}{
		{
			name:    "successful connection with in-memory database",
			cfg:     memoryConfig(),
			wantErr: false,
		},
		{
			name:    "successful connection with file database",
			cfg:     config.DatabaseConfig{Path: filepath.Join(t.TempDir(), "test.db")},
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conn, err := Initialize(tt.cfg)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.NotNil(t, conn)
			assert.NotNil(t, conn.DB)
			conn.Close()
		})
	}
}

func TestDB_Close(t *testing.T) {
	conn, err := Initialize(memoryConfig())
	require.NoError(t, err)
	require.NotNil(t, conn)

	err = conn.Close()
	assert.NoError(t, err)

	err = conn.HealthCheck()
	assert.Error(t, err, "HealthCheck should fail after database is closed")
}

func TestDB_HealthCheck(t *testing.T) {
	t.Run("healthy connection", func(t *testing.T) {
		conn, err := Initialize(memoryConfig())
		require.NoError(t, err)
		defer conn.Close()

		assert.NoError(t, conn.HealthCheck())
	})

	t.Run("nil connection", func(t *testing.T) {
		var conn *DB
		assert.Error(t, conn.HealthCheck())
	})
}

func TestDB_AutoMigrate(t *testing.T) {
	conn, err := Initialize(memoryConfig())
	require.NoError(t, err)
	defer conn.Close()

	err = conn.AutoMigrate(models.AllModels()...)
	require.NoError(t, err)

	for _, table := range []string{"videos", "transcripts", "playback_states"} {
		var count int64
		err := conn.DB.Raw(
			"SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name=?", table,
		).Scan(&count).Error
		assert.NoError(t, err)
		assert.Equal(t, int64(1), count, "table %s should exist", table)
	}
}

func TestDB_DatabaseOperations(t *testing.T) {
	conn, err := Initialize(memoryConfig())
	require.NoError(t, err)
	defer conn.Close()

	err = conn.AutoMigrate(models.AllModels()...)
	require.NoError(t, err)

	t.Run("create record", func(t *testing.T) {
		video := models.Video{
			DisplayName: "Intro lecture",
			Href:        "https://youtu.be/44zaxzFsthY",
			PlayerName:  "youtube",
			MediaID:     "44zaxzFsthY",
		}

		err := conn.DB.Create(&video).Error
		assert.NoError(t, err)
		assert.NotZero(t, video.ID)
	})

	t.Run("find record", func(t *testing.T) {
		var video models.Video
		err := conn.DB.First(&video, "media_id = ?", "44zaxzFsthY").Error
		assert.NoError(t, err)
		assert.Equal(t, "youtube", video.PlayerName)
	})

	t.Run("unique transcript per video and language", func(t *testing.T) {
		var video models.Video
		require.NoError(t, conn.DB.First(&video, "media_id = ?", "44zaxzFsthY").Error)

		first := models.Transcript{VideoID: video.ID, Lang: "en", Source: models.TranscriptSourceManual}
		require.NoError(t, conn.DB.Create(&first).Error)

		duplicate := models.Transcript{VideoID: video.ID, Lang: "en", Source: models.TranscriptSourceDefault}
		assert.Error(t, conn.DB.Create(&duplicate).Error)
	})

	t.Run("delete record", func(t *testing.T) {
		err := conn.DB.Where("media_id = ?", "44zaxzFsthY").Delete(&models.Video{}).Error
		assert.NoError(t, err)
	})
}

func TestDB_Transaction(t *testing.T) {
	conn, err := Initialize(memoryConfig())
	require.NoError(t, err)
	defer conn.Close()

	err = conn.AutoMigrate(models.AllModels()...)
	require.NoError(t, err)

	t.Run("failed transaction rollback", func(t *testing.T) {
		var countBefore int64
		conn.DB.Model(&models.Video{}).Count(&countBefore)

		err := conn.DB.Transaction(func(tx *gorm.DB) error {
			video := models.Video{Href: "https://vimeo.com/202889234", PlayerName: "vimeo", MediaID: "202889234"}
			if err := tx.Create(&video).Error; err != nil {
				return err
			}
			return gorm.ErrInvalidTransaction
		})
		assert.Error(t, err)

		var countAfter int64
		conn.DB.Model(&models.Video{}).Count(&countAfter)
		assert.Equal(t, countBefore, countAfter)
	})
}

func TestInitializeWithMigrations(t *testing.T) {
	tests := []struct {
		name      string
		setupFunc func()
		wantErr   bool
		errMsg    string
	}{
		{
			name: "successful initialization with valid config",
			setupFunc: func() {
				viper.Reset()
				viper.Set("database.path", ":memory:")
			},
			wantErr: false,
		},
		{
			name: "error when database path not configured",
			setupFunc: func() {
				viper.Reset()
				viper.Set("server.port", 8080)
			},
			wantErr: true,
			errMsg:  "database path is not configured",
		},
		{
			name: "successful initialization with file database",
			setupFunc: func() {
				viper.Reset()
				viper.Set("database.path", filepath.Join(t.TempDir(), "test.db"))
			},
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupFunc()
			defer viper.Reset()

			db, err := InitializeWithMigrations()

			if tt.wantErr {
				assert.Error(t, err)
				if tt.errMsg != "" {
					assert.Contains(t, err.Error(), tt.errMsg)
				}
				assert.Nil(t, db)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, db)

			var count int64
			err = db.DB.Raw("SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name='videos'").Scan(&count).Error
			assert.NoError(t, err)
			assert.Greater(t, count, int64(0), "videos table should exist")

			db.Close()
		})
	}
}
