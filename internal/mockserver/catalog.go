package mockserver

// Title 是内存目录中的一条记录
type Title struct {
	ImdbID   string `json:"imdbID"`
	Title    string `json:"Title"`
	Year     string `json:"Year"`
	Type     string `json:"Type"`
	Genre    string `json:"Genre"`
	Director string `json:"Director"`
}

// DefaultCatalog 覆盖冒烟测试用到的所有查询，"test" 的结果超过一页
func DefaultCatalog() []Title {
	return []Title{
		{"tt0133093", "The Matrix", "1999", "movie", "Action, Sci-Fi", "Lana Wachowski, Lilly Wachowski"},
		{"tt0234215", "The Matrix Reloaded", "2003", "movie", "Action, Sci-Fi", "Lana Wachowski, Lilly Wachowski"},
		{"tt0242653", "The Matrix Revolutions", "2003", "movie", "Action, Sci-Fi", "Lana Wachowski, Lilly Wachowski"},
		{"tt10838180", "The Matrix Resurrections", "2021", "movie", "Action, Sci-Fi", "Lana Wachowski"},
		{"tt1375666", "Inception", "2010", "movie", "Action, Adventure, Sci-Fi", "Christopher Nolan"},
		{"tt0372784", "Batman Begins", "2005", "movie", "Action, Drama", "Christopher Nolan"},
		{"tt0468569", "The Dark Knight", "2008", "movie", "Action, Crime, Drama", "Christopher Nolan"},
		{"tt0096895", "Batman", "1989", "movie", "Action, Adventure", "Tim Burton"},
		{"tt0458290", "The Batman vs. Dracula", "2005", "movie", "Animation, Action", "Michael Goguen"},
		{"tt0795176", "Planet Earth", "2006", "series", "Documentary", "N/A"},
		{"tt5491994", "Planet Earth II", "2016–", "series", "Documentary", "N/A"},
		{"tt6769208", "Blue Planet II", "2017", "series", "Documentary", "N/A"},
		{"tt0063442", "Planet of the Apes", "1968", "movie", "Adventure, Sci-Fi", "Franklin J. Schaffner"},
		{"tt1798709", "Her", "2013", "movie", "Drama, Romance", "Spike Jonze"},
		{"tt0038873", "The Test", "1946", "movie", "Short", "N/A"},
		{"tt0030848", "Test Pilot", "1938", "movie", "Drama", "Victor Fleming"},
		{"tt1230414", "Crash Test", "2008", "movie", "Documentary", "N/A"},
		{"tt9850064", "Test Pattern", "2019", "movie", "Drama", "Shatara Michelle Ford"},
		{"tt1024734", "Beta Test", "2016", "movie", "Action, Sci-Fi", "Nicholas Gyeney"},
		{"tt3316960", "Stress Test", "2014", "movie", "Drama", "N/A"},
		{"tt2101508", "Acid Test", "2012", "movie", "Drama", "N/A"},
		{"tt0114556", "Screen Test", "1995", "movie", "Comedy", "N/A"},
		{"tt4271820", "Blind Test", "2015", "movie", "Thriller", "N/A"},
		{"tt5362988", "The Final Test", "2017", "movie", "Drama", "N/A"},
		{"tt0481436", "Test of Love", "2006", "movie", "Romance", "N/A"},
		{"tt2365580", "The Test", "2013", "series", "Reality-TV", "N/A"},
		{"tt6090102", "Drug Test", "2016", "movie", "Comedy", "N/A"},
	}
}
