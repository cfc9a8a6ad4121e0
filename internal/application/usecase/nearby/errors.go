package nearby

// DataSourceError marks a failed read from the site backing store. The
// underlying cause is preserved for diagnostics; nothing is retried here.
type DataSourceError struct {
	Err error
}

func (e *DataSourceError) Error() string {
	return "site data source: " + e.Err.Error()
}

func (e *DataSourceError) Unwrap() error {
	return e.Err
}
