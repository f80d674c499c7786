package media

// library is the static song→URL table consulted before any platform search.
var library = map[string]string{
	"shape of you":             "https://www.youtube.com/watch?v=JGwWNGJdvx8",
	"despacito":                "https://www.youtube.com/watch?v=kJQP7kiw5Fk",
	"blinding lights":          "https://www.youtube.com/watch?v=4NRXx6U8ABQ",
	"uptown funk":              "https://www.youtube.com/watch?v=OPf0YbXqDm0",
	"bohemian rhapsody":        "https://www.youtube.com/watch?v=fJ9rUzIMcZQ",
	"sweet child o mine":       "https://www.youtube.com/watch?v=1nV5AFO3A_0",
	"rolling in the deep":      "https://www.youtube.com/watch?v=rYEDA3JcQqw",
	"happy":                    "https://www.youtube.com/watch?v=ZbZSe6N_BXs",
	"sicko mode":               "https://www.youtube.com/watch?v=6ONRf7h3Mdk",
	"humble":                   "https://www.youtube.com/watch?v=tvTRZJ-4EyI",
	"god's plan":               "https://www.youtube.com/watch?v=xpVfcZ0ZcFM",
	"lose yourself":            "https://www.youtube.com/watch?v=_Yhyp-_hX2s",
	"old town road":            "https://www.youtube.com/watch?v=r7qovpFAGrQ",
	"bad guy":                  "https://www.youtube.com/watch?v=DyDfgMOUjCI",
	"dance monkey":             "https://www.youtube.com/watch?v=q0hyYWKXF0Q",
	"shake it off":             "https://www.youtube.com/watch?v=nfWlot6h_JM",
	"levitating":               "https://www.youtube.com/watch?v=TUVcZfQe-Kw",
	"smells like teen spirit":  "https://www.youtube.com/watch?v=hTWKbfoikeg",
	"billie jean":              "https://www.youtube.com/watch?v=Zi_XLOBDo_Y",
	"viva la vida":             "https://www.youtube.com/watch?v=dvgZkm1xWPE",
	"hotel california":         "https://www.youtube.com/watch?v=09839DpTlyk",
	"rap god":                  "https://www.youtube.com/watch?v=XbGs_qK2PQA",
	"without me":               "https://www.youtube.com/watch?v=YVkUvmDQ3HY",
	"stan":                     "https://www.youtube.com/watch?v=gOMhN-hfMtY",
	"the real slim shady":      "https://www.youtube.com/watch?v=eJO5HU_7_1w",
	"someone like you":         "https://www.youtube.com/watch?v=hLQl3WQQoQ0",
	"perfect":                  "https://www.youtube.com/watch?v=2Vv-BfVoq4g",
	"blank space":              "https://www.youtube.com/watch?v=e-ORhEE9VVg",
	"paint it black":           "https://www.youtube.com/watch?v=O4irXQhgMqg",
	"flowers":                  "https://www.youtube.com/watch?v=G7KNmW9a75Y",
}
