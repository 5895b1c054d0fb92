package database

import (
	"fmt"

	"pageant-scoring-system/config"
	"pageant-scoring-system/internal/global/sentry/tracing"
	"pageant-scoring-system/internal/model"
	"pageant-scoring-system/tools"

	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"gorm.io/gorm/schema"
)

var DB *gorm.DB

// autoMigrateModels 定义需要自动迁移的模型列表
var autoMigrateModels = []any{
	&model.Candidate{},
	&model.PairCandidate{},
	&model.Judge{},
	&model.Segment{},
	&model.Criterion{},
	&model.PairSegment{},
	&model.PairCriterion{},
	&model.Score{},
	&model.PairScore{},
	&model.OverallWeight{},
	&model.PairOverallWeight{},
	// 在这里添加其他模型
}

func Init() {
	db, err := Open(config.Get())
	tools.PanicOnErr(err)
	tools.PanicOnErr(Use(db))
}

// Open 按配置的驱动建立连接
func Open(cfg *config.Config) (*gorm.DB, error) {
	dialector, err := dialectorOf(cfg.Database)
	if err != nil {
		return nil, err
	}
	return gorm.Open(dialector, GormConfig(cfg.Mode))
}

// GormConfig 单数表名，debug 模式打印 SQL
func GormConfig(mode config.Mode) *gorm.Config {
	gormConfig := &gorm.Config{
		NamingStrategy: schema.NamingStrategy{SingularTable: true}, // 还是单数表名好
	}
	switch mode {
	case config.ModeDebug:
		gormConfig.Logger = logger.Default.LogMode(logger.Info)
	case config.ModeRelease:
		gormConfig.Logger = logger.Discard
	}
	return gormConfig
}

// Use 安装连接：注册追踪插件并自动迁移，测试里用它换成 SQLite
func Use(db *gorm.DB) error {
	if tracing.IsEnabled() {
		if err := db.Use(tracing.NewGormTracingPlugin()); err != nil {
			return err
		}
	}
	if err := db.AutoMigrate(autoMigrateModels...); err != nil {
		return err
	}
	DB = db
	return nil
}

func dialectorOf(c config.Database) (gorm.Dialector, error) {
	switch c.Driver {
	case "", "mysql":
		dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
			c.Username, c.Password, c.Host, c.Port, c.DBName)
		return mysql.Open(dsn), nil
	case "postgres":
		dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable TimeZone=Asia/Shanghai",
			c.Host, c.Port, c.Username, c.Password, c.DBName)
		return postgres.Open(dsn), nil
	}
	return nil, fmt.Errorf("unsupported database driver %q", c.Driver)
}
