package models

// Employee represents an individual employee in the directory.
// CreatedAt is preformatted by the store as `DD.MM.YYYY HH:MM`,
// which is the only representation the API exposes.
type Employee struct {
	ID        int    `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Phone     string `json:"phone"`
	Email     string `json:"email"`
	Login     string `json:"login"`
	CreatedAt string `json:"created_at"`
}

// Column describes a single column of the employees table as reported
// by information_schema.
type Column struct {
	Name     string `json:"column_name"`
	DataType string `json:"data_type"`
}

// SchemaReport is the result of the structural check of the employees
// table: the columns that exist and the required ones that are missing.
type SchemaReport struct {
	Columns []Column
	Missing []string
}
