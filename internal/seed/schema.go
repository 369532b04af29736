package seed

// File names inside the data directory.
const (
	OrdersFile   = "pesanan.csv"
	ProductsFile = "produk.csv"
)

// Order is one row of pesanan.csv. Rows are written by the app itself; this
// tool only creates the header.
type Order struct {
	ID            string `csv:"id"`
	Date          string `csv:"tanggal"`
	BuyerName     string `csv:"nama_pembeli"`
	Product       string `csv:"produk"`
	Quantity      int    `csv:"jumlah"`
	TotalPrice    int    `csv:"harga_total"`
	SpiceLevel    string `csv:"tingkat_kepedasan"`
	Note          string `csv:"catatan"`
	PaymentMethod string `csv:"metode_pembayaran"`
	Status        string `csv:"status_pesanan"`
	OrderType     string `csv:"tipe_pesanan"`
	OrderedAt     string `csv:"waktu_pemesanan"`
	CompletedAt   string `csv:"waktu_selesai"`
}

// Product is one row of produk.csv.
type Product struct {
	Name        string `csv:"nama"`
	Price       int    `csv:"harga"`
	Description string `csv:"deskripsi"`
}

// DefaultCatalog is the menu seeded into produk.csv.
var DefaultCatalog = []Product{
	{Name: "Seblak Original", Price: 15000, Description: "Seblak Original dengan kerupuk dan telur"},
	{Name: "Seblak Seafood", Price: 20000, Description: "Seblak dengan tambahan seafood (cumi udang dsb)"},
	{Name: "Seblak Komplit", Price: 25000, Description: "Seblak dengan semua topping"},
	{Name: "Seblak Mie", Price: 18000, Description: "Seblak dengan tambahan mie"},
	{Name: "Seblak Ayam", Price: 17000, Description: "Seblak dengan tambahan potongan ayam"},
	{Name: "Seblak Tulang", Price: 16000, Description: "Seblak dengan tambahan tulang rawan"},
	{Name: "Seblak Baso", Price: 16500, Description: "Seblak dengan tambahan baso sapi"},
	{Name: "Seblak Ceker", Price: 15500, Description: "Seblak dengan tambahan ceker ayam"},
}
