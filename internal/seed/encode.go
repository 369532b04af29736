package seed

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/jszwec/csvutil"
)

// File is a seed file and the content it is created with.
type File struct {
	Name    string
	Content []byte
}

// OrdersHeader returns the column names of pesanan.csv.
func OrdersHeader() []string {
	header, err := csvutil.Header(Order{}, "csv")
	if err != nil {
		panic(fmt.Sprintf("seed: invalid Order schema: %v", err))
	}
	return header
}

// ProductsHeader returns the column names of produk.csv.
func ProductsHeader() []string {
	header, err := csvutil.Header(Product{}, "csv")
	if err != nil {
		panic(fmt.Sprintf("seed: invalid Product schema: %v", err))
	}
	return header
}

// OrdersCSV returns the header-only content of a fresh pesanan.csv. The row
// keeps its trailing newline so appended orders start on a line of their own.
func OrdersCSV() ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(OrdersHeader()); err != nil {
		return nil, fmt.Errorf("encoding orders header: %w", err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("encoding orders header: %w", err)
	}
	return buf.Bytes(), nil
}

// ProductsCSV returns the content of a fresh produk.csv: header plus the
// default catalog.
func ProductsCSV() ([]byte, error) {
	data, err := csvutil.Marshal(DefaultCatalog)
	if err != nil {
		return nil, fmt.Errorf("encoding default catalog: %w", err)
	}
	return data, nil
}

// Files returns both seed files in creation order.
func Files() ([]File, error) {
	orders, err := OrdersCSV()
	if err != nil {
		return nil, err
	}
	products, err := ProductsCSV()
	if err != nil {
		return nil, err
	}
	return []File{
		{Name: OrdersFile, Content: orders},
		{Name: ProductsFile, Content: products},
	}, nil
}

// ReadHeader returns the first record of the CSV file at path.
func ReadHeader(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	header, err := r.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%s is empty", path)
	}
	if err != nil {
		return nil, fmt.Errorf("reading header of %s: %w", path, err)
	}
	return header, nil
}

// HeaderMatches reports whether got equals want column by column.
func HeaderMatches(got, want []string) bool {
	return slices.Equal(got, want)
}

// CountProducts decodes produk.csv content and returns the number of rows.
func CountProducts(data []byte) (int, error) {
	var products []Product
	if err := csvutil.Unmarshal(data, &products); err != nil {
		return 0, fmt.Errorf("decoding products: %w", err)
	}
	return len(products), nil
}
