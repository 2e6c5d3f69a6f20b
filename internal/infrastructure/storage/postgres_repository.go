package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"NewsRanker/internal/domain"
	"NewsRanker/internal/ports"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// PostgresRepository reads user-interaction counters and persists homepage
// snapshots for audit.
type PostgresRepository struct {
	db *sql.DB
}

var _ ports.InteractionRepository = (*PostgresRepository)(nil)

// NewPostgresRepository wires a sql.DB implementation.
func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// LikeCounts returns stored like counts for the given article IDs. Articles
// with no interaction row are simply absent from the result.
func (r *PostgresRepository) LikeCounts(ctx context.Context, ids []string) (map[string]int, error) {
	if r.db == nil || len(ids) == 0 {
		return map[string]int{}, nil
	}

	query, args, err := psql.
		Select("article_id", "like_count").
		From("article_interactions").
		Where("article_id = ANY(?)", pq.StringArray(ids)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build like counts query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query like counts: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var id string
		var likes int
		if err := rows.Scan(&id, &likes); err != nil {
			return nil, fmt.Errorf("scan like count: %w", err)
		}
		counts[id] = likes
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration: %w", err)
	}

	return counts, nil
}

// SaveSnapshot upserts the assembled homepage as a JSON document keyed by
// its snapshot ID.
func (r *PostgresRepository) SaveSnapshot(ctx context.Context, homepage domain.Homepage) error {
	if r.db == nil {
		return nil
	}

	payload, err := json.Marshal(homepage)
	if err != nil {
		return fmt.Errorf("marshal homepage %s: %w", homepage.ID, err)
	}

	heroID := ""
	if homepage.Hero != nil {
		heroID = homepage.Hero.Article.ID
	}

	query, args, err := psql.
		Insert("homepage_snapshots").
		Columns("id", "generated_at", "hero_article_id", "payload").
		Values(homepage.ID, homepage.GeneratedAt, heroID, payload).
		Suffix("ON CONFLICT (id) DO UPDATE SET payload = EXCLUDED.payload, hero_article_id = EXCLUDED.hero_article_id").
		ToSql()
	if err != nil {
		return fmt.Errorf("build snapshot query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("upsert snapshot %s: %w", homepage.ID, err)
	}

	return nil
}
