// Package etl defines the data model shared by the field builder: per-file
// field declarations (sources), header views, merged ETL fields and units.
//
// # Document layout
//
// Header views are loaded from YAML (or JSON) keyed by filename:
//
//	sales.csv:
//	  enabled: true
//	  fields:
//	    - header-idx: 0
//	      field-alias: store
//	      purpose: subject
//	      levels: [[A, 10], [B, 4]]
//	    - header-idx: 1
//	      field-alias: month
//	      purpose: mspan
//	      format: MM-DD-YY
//	      time:
//	        reference: {idx: 0, value: 01-06-16}
//	        interval: {unit: months, count: 1}
//	    - header-idx: 2
//	      field-alias: color
//	      purpose: quality
//	      map-symbols:
//	        arrows: {red: RED}
//
// Field names (`field-alias`, `map-symbols`, `time.reference`,
// `time.interval`) match the layout persisted by the workbench UI.
package etl
