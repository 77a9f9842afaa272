// sample.go - Built-in dataset shown when no records file is given
package main

import "github.com/rootisgod/tablekit/datatable"

func sampleRecords() []datatable.Record {
	return []datatable.Record{
		{"id": 1, "name": "John Doe", "age": 30, "city": "New York"},
		{"id": 2, "name": "Jane Smith", "age": 25, "city": "Los Angeles"},
		{"id": 3, "name": "Bob Johnson", "age": 35, "city": "Chicago"},
		{"id": 4, "name": "Alice Brown", "age": 28, "city": "Houston"},
		{"id": 5, "name": "Charlie Wilson", "age": 32, "city": "Phoenix"},
	}
}

func sampleColumns() []datatable.Column {
	return []datatable.Column{
		{Key: "name", Title: "Name", Field: "name", Sortable: true},
		{Key: "age", Title: "Age", Field: "age", Sortable: true},
		{Key: "city", Title: "City", Field: "city", Sortable: true},
	}
}
