package database

import (
	"context"
	"log"
	"sort"
	"sync"
	"time"

	"github.com/go-gormigrate/gormigrate/v2"
	"github.com/pkg/errors"
)

var (
	migSet         *migrationSet
	migSetInitOnce sync.Once
)

// 迁移文件集合（按 ID 注册，执行时按 ID 排序）
type migrationSet struct {
	mapping map[string]*gormigrate.Migration
}

func (s *migrationSet) register(m *gormigrate.Migration) error {
	if _, ok := s.mapping[m.ID]; ok {
		return errors.Errorf("migration %s already registered", m.ID)
	}
	s.mapping[m.ID] = m
	return nil
}

// 迁移 ID 即时间戳，排序后即执行顺序
func (s *migrationSet) sorted() []*gormigrate.Migration {
	migrations := make([]*gormigrate.Migration, 0, len(s.mapping))
	for _, m := range s.mapping {
		migrations = append(migrations, m)
	}
	sort.Slice(migrations, func(i, j int) bool {
		return migrations[i].ID < migrations[j].ID
	})
	return migrations
}

// 初始化数据库迁移集
func getMigrationSet() *migrationSet {
	migSetInitOnce.Do(func() {
		migSet = &migrationSet{
			mapping: map[string]*gormigrate.Migration{},
		}
	})
	return migSet
}

// RegisterMigration 注册迁移文件
func RegisterMigration(m *gormigrate.Migration) {
	if err := getMigrationSet().register(m); err != nil {
		log.Fatalf("failed to register migration: %s", err)
	}
}

// RunMigrate 执行数据库迁移，migrationID 为空时迁移到最新版本
func RunMigrate(ctx context.Context, migrationID string) error {
	migrations := getMigrationSet().sorted()
	if len(migrations) == 0 {
		return errors.New("no migration registered")
	}

	m := gormigrate.New(Client(ctx), gormigrate.DefaultOptions, migrations)
	if migrationID == "" {
		return m.Migrate()
	}
	return m.MigrateTo(migrationID)
}

// Version 获取当前数据库迁移版本
func Version(ctx context.Context) (string, error) {
	var versions []string
	err := Client(ctx).Table(gormigrate.DefaultOptions.TableName).
		Order(gormigrate.DefaultOptions.IDColumnName+" DESC").
		Limit(1).
		Pluck(gormigrate.DefaultOptions.IDColumnName, &versions).Error
	if err != nil {
		return "", err
	}
	if len(versions) == 0 {
		return "", errors.New("no migration applied")
	}
	return versions[0], nil
}

// GenMigrationID 生成迁移 ID（当前时间戳）
func GenMigrationID() string {
	return time.Now().Format("20060102_150405")
}
