package heredity

import (
	"time"

	"github.com/carbocation/pfx"
	"github.com/jmoiron/sqlx"
)

// PosteriorStore persists inference results in a SQLite database so
// they can be re-read or joined against other tooling without
// re-running the enumeration.
type PosteriorStore struct {
	DB       *sqlx.DB
	Metadata *StoreMetadata
}

func (s *PosteriorStore) Close() error {
	return s.DB.Close()
}

// StoreMetadata conforms to the data found in the rows of the SQLite
// table "Metadata" written alongside the posteriors.
type StoreMetadata struct {
	SourcePath   string  `db:"source_path"`
	NIndividuals int     `db:"n_individuals"`
	NWorlds      int     `db:"n_worlds"`
	Mutation     float64 `db:"mutation"`
	CreatedAt    Time    `db:"created_at"`
}

// PosteriorRow conforms to the data found in the rows of the SQLite
// table "Posterior", and can be easily parsed with sqlx. Rank is the
// individual's position in the source pedigree, so stored results can
// be reported in input order.
type PosteriorRow struct {
	Name       string  `db:"name"`
	Rank       int     `db:"rank"`
	ZeroCopies float64 `db:"zero_copies"`
	OneCopy    float64 `db:"one_copy"`
	TwoCopies  float64 `db:"two_copies"`
	TraitTrue  float64 `db:"trait_true"`
	TraitFalse float64 `db:"trait_false"`
}

const storeSchema = `
CREATE TABLE Metadata (
	source_path   TEXT,
	n_individuals INTEGER,
	n_worlds      INTEGER,
	mutation      REAL,
	created_at    INTEGER
);
CREATE TABLE Posterior (
	name        TEXT PRIMARY KEY,
	rank        INTEGER,
	zero_copies REAL,
	one_copy    REAL,
	two_copies  REAL,
	trait_true  REAL,
	trait_false REAL
);`

// CreatePosteriorStore writes the results of one inference run to a new
// SQLite database at path.
func CreatePosteriorStore(path string, ped *Pedigree, m Model, results Results) error {
	db, err := openStoreDB(path)
	if err != nil {
		return pfx.Err(err)
	}
	defer db.Close()

	if _, err := db.Exec(storeSchema); err != nil {
		return pfx.Err(err)
	}

	tx, err := db.Beginx()
	if err != nil {
		return pfx.Err(err)
	}

	if _, err := tx.Exec(
		`INSERT INTO Metadata (source_path, n_individuals, n_worlds, mutation, created_at) VALUES (?, ?, ?, ?, ?)`,
		ped.FilePath, len(ped.Names), NumWorlds(ped), m.Mutation, time.Now().Unix(),
	); err != nil {
		tx.Rollback()
		return pfx.Err(err)
	}

	for rank, name := range ped.Names {
		post := results[name]
		if _, err := tx.Exec(
			`INSERT INTO Posterior (name, rank, zero_copies, one_copy, two_copies, trait_true, trait_false) VALUES (?, ?, ?, ?, ?, ?, ?)`,
			name, rank, post.GeneCounts[0], post.GeneCounts[1], post.GeneCounts[2], post.Trait[1], post.Trait[0],
		); err != nil {
			tx.Rollback()
			return pfx.Err(err)
		}
	}

	if err := tx.Commit(); err != nil {
		return pfx.Err(err)
	}

	return nil
}

// OpenPosteriorStore opens a posterior database previously written by
// CreatePosteriorStore.
func OpenPosteriorStore(path string) (*PosteriorStore, error) {
	db, err := openStoreDB(path)
	if err != nil {
		return nil, pfx.Err(err)
	}

	s := &PosteriorStore{
		DB:       db,
		Metadata: &StoreMetadata{},
	}

	// Older stores may lack metadata; ignore any error
	_ = s.DB.Get(s.Metadata, "SELECT * FROM Metadata LIMIT 1")

	return s, nil
}

// ReadAll returns every stored posterior in source-file order.
func (s *PosteriorStore) ReadAll() ([]PosteriorRow, error) {
	rows, err := s.DB.Queryx("SELECT * FROM Posterior ORDER BY rank ASC")
	if err != nil {
		return nil, pfx.Err(err)
	}
	defer rows.Close()

	var out []PosteriorRow
	var row PosteriorRow
	for rows.Next() {
		if err := rows.StructScan(&row); err != nil {
			return nil, pfx.Err(err)
		}
		out = append(out, row)
	}

	if err := rows.Err(); err != nil {
		return nil, pfx.Err(err)
	}

	return out, nil
}
