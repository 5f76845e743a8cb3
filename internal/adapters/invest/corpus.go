package invest

// Term banks for realistic investment/financial content. Duplicate entries
// are intentional: draws are uniform over the slice, so a repeated term is
// proportionally more likely to appear.
var investmentTerms = []string{
	"market", "equity", "bond", "commodity", "portfolio", "diversification", "risk",
	"return", "volatility", "liquidity", "capital", "investment", "strategy", "analysis",
	"valuation", "earnings", "revenue", "profit", "margin", "growth", "trend", "momentum",
	"technical", "fundamental", "quantitative", "qualitative", "sector", "industry", "global",
	"emerging", "developed", "macroeconomic", "microeconomic", "inflation", "deflation",
	"monetary", "fiscal", "policy", "regulation", "compliance", "governance", "sustainability",
	"impact", "ESG", "carbon", "renewable", "technology", "innovation", "disruption", "digital",
	"transformation", "automation", "artificial", "intelligence", "machine", "learning", "data",
	"analytics", "blockchain", "cryptocurrency", "fintech", "regtech", "wealth", "management",
	"retirement", "planning", "tax", "optimization", "estate", "insurance", "derivative", "option",
	"future", "swap", "structured", "product", "convertible", "preferred", "warrant", "right",
	"offering", "private", "placement", "IPO", "secondary", "merger", "acquisition", "LBO",
	"divestiture", "spin-off", "restructuring", "bankruptcy", "distressed", "credit", "rating",
	"agency", "CDS", "CDO", "MBS", "ABS", "commercial", "paper", "treasury", "municipal",
	"corporate", "high-yield", "investment-grade", "sovereign", "foreign", "exchange", "hedging",
	"interest", "rate", "duration", "convexity", "yield", "curve", "term", "structure", "forward",
	"rate", "swap", "rate", "LIBOR", "SOFR", "fed", "funds", "prime", "discount", "reserve",
	"quantitative", "easing", "tapering", "normalization", "tightening", "easing",
}

var (
	assetClasses = []string{"Equities", "Bonds", "Commodities", "REITs", "FX", "Derivatives", "Alternatives", "Cash"}

	companies = []string{
		"Apple Inc.", "Microsoft Corporation", "Amazon.com Inc.", "Alphabet Inc.", "Tesla Inc.",
		"JPMorgan Chase & Co.", "Johnson & Johnson", "Procter & Gamble", "Coca-Cola Company", "Walmart Inc.",
		"Exxon Mobil Corporation", "Chevron Corporation", "Pfizer Inc.", "Verizon Communications Inc.",
	}

	instruments = []string{"Stocks", "Bonds", "ETF", "Options", "Futures", "Funds", "Notes", "Swaps"}

	sectors = []string{
		"Energy", "Materials", "Industrials", "Consumer Discretionary", "Consumer Staples",
		"Health Care", "Financials", "Information Technology", "Communication Services", "Utilities", "Real Estate",
	}

	regions = []string{"Global", "US", "Europe", "APAC", "EMEA", "LATAM", "Emerging Markets", "China", "Japan"}

	riskProfiles = []string{"Conservative", "Moderate", "Aggressive"}

	timeHorizons = []string{"Short-term", "Medium-term", "Long-term"}
)

var tagVocabulary = []string{
	"market-analysis", "investment-strategy", "risk-management", "portfolio-optimization",
	"economic-indicators", "sector-rotation", "asset-allocation", "diversification",
	"market-timing", "fundamental-analysis", "technical-analysis", "quantitative-methods",
	"behavioral-finance", "sustainable-investing", "impact-investing", "alternative-investments",
	"private-equity", "venture-capital", "hedge-funds", "real-estate", "commodities", "currencies",
	"fixed-income", "equity-markets", "emerging-markets", "developed-markets", "frontier-markets",
	"global-macro", "geopolitical-risk", "regulatory-changes", "monetary-policy", "fiscal-policy",
	"inflation", "deflation", "recession", "expansion", "bull-market", "bear-market", "volatility",
	"liquidity", "correlation", "beta", "alpha", "sharpe-ratio", "sortino-ratio", "maximum-drawdown",
	"value-at-risk", "expected-shortfall", "stress-testing", "scenario-analysis", "monte-carlo-simulation",
	"black-scholes", "binomial-model", "stochastic-calculus", "machine-learning", "artificial-intelligence",
	"big-data", "blockchain", "cryptocurrency", "fintech", "regtech", "robo-advisors", "wealth-management",
	"retirement-planning", "tax-optimization", "estate-planning", "insurance", "derivatives",
	"options-strategies", "futures-contracts", "swaps", "structured-products", "convertible-bonds",
	"preferred-stock", "warrants", "rights-offerings", "private-placements", "initial-public-offerings",
	"secondary-offerings", "mergers-acquisitions", "leveraged-buyouts", "divestitures", "spin-offs",
	"restructuring", "bankruptcy", "distressed-debt", "credit-analysis", "rating-agencies",
	"credit-default-swaps", "collateralized-debt-obligations", "mortgage-backed-securities",
	"asset-backed-securities", "commercial-paper", "treasury-securities", "municipal-bonds",
	"corporate-bonds", "high-yield-bonds", "investment-grade", "sovereign-debt", "emerging-market-debt",
	"foreign-exchange", "currency-hedging", "interest-rate-risk", "duration", "convexity", "yield-curve",
	"term-structure", "forward-rates", "swap-rates", "libor", "sofr", "fed-funds-rate", "prime-rate",
	"discount-rate", "reserve-requirements", "quantitative-easing", "tapering", "normalization",
	"policy-tightening", "policy-easing",
}

var (
	noteRoles    = []string{"author", "editor", "reviewer", "lead_author", "contributor"}
	noteStatuses = []string{"open", "resolved", "closed"}

	blockTypes       = []string{"textual", "figure", "table", "composite", "custom"}
	publicationTypes = []string{"quarterly_report", "thematic_report", "strategy_note", "market_commentary", "research_note"}
	audiences        = []string{"institutional", "retail", "internal"}

	publicationAuthors = []string{"Dr. Sarah Chen", "Michael Rodriguez", "Dr. Elena Petrov", "James Wilson", "Dr. Ahmed Hassan"}
)
