package warehouse

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	// registers the "bigquery" database/sql driver
	_ "github.com/viant/bigquery"

	"github.com/google/uuid"

	"github.com/reviewlens/reviewlens/config"
	"github.com/reviewlens/reviewlens/internal"
	"github.com/reviewlens/reviewlens/pkg/models"
)

var log = internal.GetLogger()

var _ models.Warehouse = &BigQueryWarehouse{}

// BigQueryWarehouse fetches review and metadata rows from BigQuery. Each
// fetch opens a fresh connection; there is no pooling across sessions.
// Fetch failures are logged and yield empty result sets, never errors.
type BigQueryWarehouse struct {
	cfg *config.WarehouseConfig
}

func NewBigQueryWarehouse(cfg *config.Config) *BigQueryWarehouse {
	return &BigQueryWarehouse{cfg: &cfg.Warehouse}
}

func (w *BigQueryWarehouse) dsn() string {
	return fmt.Sprintf("bigquery://%s/%s", w.cfg.Project, w.cfg.Dataset)
}

func (w *BigQueryWarehouse) open() (*sql.DB, error) {
	db, err := sql.Open("bigquery", w.dsn())
	if err != nil {
		return nil, fmt.Errorf("failed to open bigquery connection: %w", err)
	}
	return db, nil
}

func (w *BigQueryWarehouse) timeout() time.Duration {
	return time.Duration(w.cfg.TimeoutSeconds) * time.Second
}

func (w *BigQueryWarehouse) FetchReviews(ctx context.Context, asin string) []models.ReviewRecord {
	db, err := w.open()
	if err != nil {
		log.Errorf("Error fetching reviews for ASIN %s: %v", asin, err)
		return []models.ReviewRecord{}
	}
	defer db.Close()

	thisCtx, cancel := context.WithTimeout(ctx, w.timeout())
	defer cancel()

	query := fmt.Sprintf(
		`SELECT parent_asin, user_id, rating, title, text, timestamp FROM %s WHERE parent_asin = ?`,
		w.cfg.ReviewsTable,
	)

	rows, err := db.QueryContext(thisCtx, query, asin)
	if err != nil {
		log.Errorf("Error fetching reviews for ASIN %s: %v", asin, err)
		return []models.ReviewRecord{}
	}
	defer rows.Close()

	var records []models.ReviewRecord
	for rows.Next() {
		var (
			parentASIN sql.NullString
			userID     sql.NullString
			rating     sql.NullFloat64
			title      sql.NullString
			body       sql.NullString
			timestamp  sql.NullInt64
		)
		if err := rows.Scan(&parentASIN, &userID, &rating, &title, &body, &timestamp); err != nil {
			log.Errorf("Error scanning review row for ASIN %s: %v", asin, err)
			return []models.ReviewRecord{}
		}

		record := models.ReviewRecord{
			UUID:       uuid.New(),
			ASIN:       parentASIN.String,
			ReviewerID: userID.String,
			Rating:     rating.Float64,
			Title:      title.String,
			Timestamp:  time.UnixMilli(timestamp.Int64),
		}
		// A NULL body stays nil so the document builder drops the row.
		if body.Valid {
			record.Body = body.String
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		log.Errorf("Error fetching reviews for ASIN %s: %v", asin, err)
		return []models.ReviewRecord{}
	}

	log.Infof("Fetched %d review records for ASIN: %s", len(records), asin)
	return records
}

func (w *BigQueryWarehouse) FetchMetadata(ctx context.Context, asin string) []models.ProductMetadata {
	db, err := w.open()
	if err != nil {
		log.Errorf("Error fetching metadata for ASIN %s: %v", asin, err)
		return []models.ProductMetadata{}
	}
	defer db.Close()

	thisCtx, cancel := context.WithTimeout(ctx, w.timeout())
	defer cancel()

	query := fmt.Sprintf(
		`SELECT parent_asin, title, main_category, price, average_rating, rating_number FROM %s WHERE parent_asin = ?`,
		w.cfg.MetadataTable,
	)

	rows, err := db.QueryContext(thisCtx, query, asin)
	if err != nil {
		log.Errorf("Error fetching metadata for ASIN %s: %v", asin, err)
		return []models.ProductMetadata{}
	}
	defer rows.Close()

	var records []models.ProductMetadata
	for rows.Next() {
		var (
			parentASIN    sql.NullString
			title         sql.NullString
			category      sql.NullString
			price         sql.NullFloat64
			averageRating sql.NullFloat64
			ratingNumber  sql.NullInt64
		)
		if err := rows.Scan(&parentASIN, &title, &category, &price, &averageRating, &ratingNumber); err != nil {
			log.Errorf("Error scanning metadata row for ASIN %s: %v", asin, err)
			return []models.ProductMetadata{}
		}

		records = append(records, models.ProductMetadata{
			ASIN:     parentASIN.String,
			Title:    title.String,
			Category: category.String,
			Price:    price.Float64,
			Attributes: map[string]interface{}{
				"average_rating": averageRating.Float64,
				"rating_number":  ratingNumber.Int64,
			},
		})
	}
	if err := rows.Err(); err != nil {
		log.Errorf("Error fetching metadata for ASIN %s: %v", asin, err)
		return []models.ProductMetadata{}
	}

	log.Infof("Fetched %d metadata records for ASIN: %s", len(records), asin)
	return records
}
