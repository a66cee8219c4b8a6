package content

// Defaults is the template used to synthesize an article when no
// stored body exists for an identifier.
type Defaults struct {
	Title    string
	Author   string
	Date     string
	ReadTime string
	Category string
	Excerpt  string
	Content  FullContent
}

// DefaultTemplate returns the stock placeholder article.
func DefaultTemplate() Defaults {
	return Defaults{
		Title:    "სტატია",
		Author:   "ავტორი",
		Date:     "თარიღი",
		ReadTime: "5 წუთი",
		Category: "კატეგორია",
		Excerpt:  "მენტორობა გვეხმარება უფრო სწრაფად ვისწავლოთ და სწორი მიმართულებით განვვითარდეთ.",
		Content: FullContent{
			Introduction: "მენტორობა ერთ-ერთი ყველაზე ეფექტური გზაა პროფესიული და პირადი ზრდისთვის. გამოცდილ ადამიანთან ურთიერთობა გვეხმარება შეცდომების თავიდან აცილებაში და მიზნების უფრო სწრაფად მიღწევაში.",
			Sections: []Section{
				{
					Heading: "რატომ არის მენტორობა მნიშვნელოვანი",
					Content: "მენტორი გიზიარებს საკუთარ გამოცდილებას, გეხმარება სწორი გადაწყვეტილებების მიღებაში და გაძლევს გულწრფელ უკუკავშირს. ეს ყველაფერი სწავლის პროცესს ბევრად უფრო მიზანმიმართულს ხდის.",
				},
				{
					Heading: "როგორ ავირჩიოთ სწორი მენტორი",
					Content: "მნიშვნელოვანია, რომ მენტორს ჰქონდეს გამოცდილება იმ სფეროში, რომელიც შენთვის საინტერესოა. ასევე მნიშვნელოვანია ურთიერთპატივისცემა და ღია კომუნიკაცია.",
				},
				{
					Heading: "როგორ მოვემზადოთ შეხვედრისთვის",
					Content: "შეხვედრამდე ჩამოწერე კითხვები და მიზნები. რაც უფრო კონკრეტული იქნები, მით უფრო სასარგებლო იქნება საუბარი.",
				},
				{
					Heading: "როგორ შევინარჩუნოთ პროგრესი",
					Content: "რეგულარული შეხვედრები, მიღწევების აღრიცხვა და უკუკავშირის გათვალისწინება გეხმარება განვითარების ტემპის შენარჩუნებაში.",
				},
			},
			Conclusion: "მენტორობა ორმხრივი პროცესია: ის ავითარებს როგორც მენტის, ისე მენტორს. დაიწყე დღესვე და გადადგი პირველი ნაბიჯი შენი მიზნებისკენ.",
		},
	}
}
