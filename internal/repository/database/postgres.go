package database

import (
	"database/sql"
	"fmt"
	"log"

	"github.com/Tamjid17/TGBot/internal/configs"
	_ "github.com/lib/pq"
)

const AppendPhoto = "Repository-AppendPhoto"
const GetPhotosByDate = "Repository-GetPhotosByDate"

func NewPostgresConnection(cfg configs.DatabaseConfig) (*DBObject, error) {
	dbObject := &DBObject{}
	connectionString := buildConnectionString(cfg)
	err := dbObject.Open(cfg.Driver, connectionString)
	if err != nil {
		log.Printf("[DEBUG] [Photo-Bot] Failed to connect to Postgre-Client: %v", err)
		return nil, err
	}

	err = dbObject.Ping()
	if err != nil {
		dbObject.Close()
		return nil, err
	}

	log.Println("[DEBUG] [Photo-Bot] Successful connect to Postgre-Client")
	return dbObject, nil
}

type DBObject struct {
	connect *sql.DB
	mapstmt map[string]*sql.Stmt
}

func (db *DBObject) Open(driverName, connectionString string) error {
	var err error
	db.connect, err = sql.Open(driverName, connectionString)
	if err != nil {
		log.Printf("[DEBUG] [Photo-Bot] Postgre-Client-Open error: %v", err)
		return err
	}
	db.mapstmt = make(map[string]*sql.Stmt)
	queries := map[string]string{
		insertPhotoQuery:  "Prepare insert photo",
		selectPhotosQuery: "Prepare select photos by date",
	}
	for query, errv := range queries {
		stmt, err := db.connect.Prepare(query)
		if err != nil {
			return fmt.Errorf("%s: %w", errv, err)
		}
		db.mapstmt[query] = stmt
	}
	return nil
}

func (db *DBObject) Close() {
	for _, smtp := range db.mapstmt {
		smtp.Close()
	}
	db.connect.Close()
	log.Println("[DEBUG] [Photo-Bot] Successful close Postgre-Client")
}

func (db *DBObject) Ping() error {
	err := db.connect.Ping()
	if err != nil {
		log.Printf("[DEBUG] [Photo-Bot] Postgre-Client-Ping error: %v", err)
		return err
	}
	return nil
}

func buildConnectionString(cfg configs.DatabaseConfig) string {
	return fmt.Sprintf("postgresql://%s:%s@%s:%d/%s?sslmode=%s",
		cfg.User, cfg.Password, cfg.Host, cfg.Port, cfg.Name, cfg.SSLMode)
}
