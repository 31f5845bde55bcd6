package entity

// Models every table, in migration order
func Models() []interface{} {
	return []interface{}{&Product{}, &Content{}, &Order{}}
}
