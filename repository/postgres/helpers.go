package postgres

// rowScanner is satisfied by both pgx.Row and pgx.Rows.
type rowScanner interface {
	Scan(dest ...interface{}) error
}

// nextTimestamp advances updated_at even when two writes land in the same microsecond.
const nextTimestamp = `GREATEST(clock_timestamp(), updated_at + interval '1 microsecond')`

// nullableString converts an optional string into a pgx argument (nil maps to NULL).
func nullableString(s *string) interface{} {
	if s == nil {
		return nil
	}
	return *s
}
