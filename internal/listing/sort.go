package listing

import (
	"sort"
	"strings"

	"dpfm/internal/fileinfo"
)

// SortKey selects the field entries are ordered by.
type SortKey int

const (
	SortByName SortKey = iota
	SortBySize
	SortByType
	SortByDate
)

// ParseSortKey maps config strings ("name", "size", "type", "date") to a key.
func ParseSortKey(s string) SortKey {
	switch strings.ToLower(s) {
	case "size":
		return SortBySize
	case "type":
		return SortByType
	case "date", "modified":
		return SortByDate
	default:
		return SortByName
	}
}

// String returns the config spelling of the key.
func (k SortKey) String() string {
	switch k {
	case SortBySize:
		return "size"
	case SortByType:
		return "type"
	case SortByDate:
		return "date"
	default:
		return "name"
	}
}

// SortOrder is ascending or descending.
type SortOrder int

const (
	OrderAsc SortOrder = iota
	OrderDesc
)

// ParseSortOrder maps config strings ("asc", "desc") to an order.
func ParseSortOrder(s string) SortOrder {
	if strings.ToLower(s) == "desc" {
		return OrderDesc
	}
	return OrderAsc
}

// String returns the config spelling of the order.
func (o SortOrder) String() string {
	if o == OrderDesc {
		return "desc"
	}
	return "asc"
}

// SortEntries orders entries in place by key and direction. The sort is
// stable: equal keys keep their pre-sort relative order. Name and Type
// compare case-insensitively; Size treats directories as the logical
// minimum so they precede every file under ascending order; Date compares
// modification timestamps.
func SortEntries(entries []fileinfo.FileInfo, key SortKey, order SortOrder) {
	sort.SliceStable(entries, func(i, j int) bool {
		c := compareEntries(entries[i], entries[j], key)
		if order == OrderDesc {
			return c > 0
		}
		return c < 0
	})
}

// SortListing sorts both groups of a listing with the same key/direction.
func SortListing(l *Listing, key SortKey, order SortOrder) {
	SortEntries(l.Folders, key, order)
	SortEntries(l.Files, key, order)
}

func compareEntries(a, b fileinfo.FileInfo, key SortKey) int {
	switch key {
	case SortBySize:
		// Directories sort below any file size, regardless of display.
		switch {
		case a.IsDir && b.IsDir:
			return 0
		case a.IsDir:
			return -1
		case b.IsDir:
			return 1
		case a.Size < b.Size:
			return -1
		case a.Size > b.Size:
			return 1
		default:
			return 0
		}
	case SortByType:
		return strings.Compare(strings.ToLower(fileinfo.TypeLabel(a)), strings.ToLower(fileinfo.TypeLabel(b)))
	case SortByDate:
		switch {
		case a.Modified.Before(b.Modified):
			return -1
		case a.Modified.After(b.Modified):
			return 1
		default:
			return 0
		}
	default: // SortByName
		return strings.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name))
	}
}
