package locale

var english = Table{
	"title":                   "VAL & DEBT",
	"advancedWealthSimulator": "Advanced Wealth Simulator",
	"tagline":                 "Catch Assets. Dodge Debt. Build Wealth.",
	"highScore":               "High Score",
	"controlsLabel":           "Controls",
	"controlsMove":            "Mouse / A D / Arrows to move",
	"controlsGoals":           "Catch Assets • Dodge Debt",
	"controlsMute":            "M to mute",
	"controlsQuit":            "Q to quit",
	"pressStart":              ">> Press SPACE to start <<",
	"pressRetry":              ">> Press SPACE to retry <<",
	"level":                   "LVL",
	"combo":                   "COMBO",
	"lives":                   "Portfolio Health",
	"bullMarket":              "BULL MARKET",
	"marketCrash":             "MARKET CRASH",
	"newHighScore":            "★ NEW HIGH SCORE ★",
	"finalPortfolio":          "Final Portfolio",
	"muted":                   "MUTED",

	"inactivityWarning": "INACTIVITY WARNING",
	"disconnectIn":      "You will be disconnected in %d seconds.",
	"pressAnyKey":       "Press any key to continue",
	"serverShutdown":    "SERVER SHUTTING DOWN",
	"serverRestarting":  "The server is restarting for maintenance.",
	"reconnectSoon":     "Please reconnect in a moment.",
	"disconnectingIn":   "Disconnecting in %d seconds...",
	"pressQuitNow":      "Press Q to disconnect now",

	"stocksLabel":      "Stocks",
	"educationLabel":   "Education",
	"familyHome":       "Family Home",
	"commPlaza":        "Comm. Plaza",
	"maintenance":      "Maintenance",
	"interestHike":     "Interest Hike",
	"marketCrashLabel": "Market Crash",

	"investmentSummary":           "Investment Summary",
	"assetBreakdown":              "Asset Breakdown",
	"liabilityBreakdown":          "Liability Breakdown",
	"totalGains":                  "Total Gains",
	"totalLosses":                 "Total Losses",
	"performanceAnalysisPositive": "Excellent! Your gains far outweigh your losses. You showed great ability to pick valuable assets.",
	"performanceAnalysisNegative": "Your losses exceeded your gains this period. Risk management is fundamental for long-term growth.",
	"marketCollapseNarrative":     "The market collapsed due to high volatility and risky investment decisions.",
	"smartInvesting":              "Smart Investing",

	"whyStocks":      "Stocks offer high growth potential through appreciation and dividends, with market volatility.",
	"whyRealEstate":  "Real estate provides security and steady rental income, and hedges against inflation.",
	"whyEducation":   "Education is an investment in human capital that raises long-term earning potential.",
	"whyCommercial":  "Commercial buildings offer higher rental yields and longer leases than residential property.",
	"whyMaintenance": "Maintenance is a recurring liability. Neglect leads to depreciation and costly repairs.",
	"whyInterest":    "Interest hikes raise the cost of debt and drain cash flow.",
	"whyCrash":       "A market crash is systemic risk. Emergency reserves are what survive it.",
}

var spanish = Table{
	"title":                   "VAL & DEUDA",
	"advancedWealthSimulator": "Simulador Avanzado de Riqueza",
	"tagline":                 "Atrapa Activos. Esquiva Deudas. Crea Riqueza.",
	"highScore":               "Récord",
	"controlsLabel":           "Controles",
	"controlsMove":            "Ratón / A D / Flechas para mover",
	"controlsGoals":           "Atrapa Activos • Esquiva Deuda",
	"controlsMute":            "M para silenciar",
	"controlsQuit":            "Q para salir",
	"pressStart":              ">> Pulsa ESPACIO para jugar <<",
	"pressRetry":              ">> Pulsa ESPACIO para reintentar <<",
	"level":                   "NIVEL",
	"combo":                   "COMBO",
	"lives":                   "Salud de Cartera",
	"bullMarket":              "MERCADO ALCISTA",
	"marketCrash":             "COLAPSO DEL MERCADO",
	"newHighScore":            "★ NUEVO RÉCORD ★",
	"finalPortfolio":          "Cartera Final",
	"muted":                   "SILENCIO",

	"inactivityWarning": "AVISO DE INACTIVIDAD",
	"disconnectIn":      "Serás desconectado en %d segundos.",
	"pressAnyKey":       "Pulsa cualquier tecla para continuar",
	"serverShutdown":    "EL SERVIDOR SE ESTÁ APAGANDO",
	"serverRestarting":  "El servidor se reinicia por mantenimiento.",
	"reconnectSoon":     "Vuelve a conectarte en un momento.",
	"disconnectingIn":   "Desconectando en %d segundos...",
	"pressQuitNow":      "Pulsa Q para desconectarte ya",

	"stocksLabel":      "Acciones",
	"educationLabel":   "Educación",
	"familyHome":       "Vivienda",
	"commPlaza":        "Plaza Comercial",
	"maintenance":      "Mantenimiento",
	"interestHike":     "Alza de Tasas",
	"marketCrashLabel": "Colapso",

	"investmentSummary":           "Resumen de Inversión",
	"assetBreakdown":              "Desglose de Activos",
	"liabilityBreakdown":          "Desglose de Pasivos",
	"totalGains":                  "Ganancias Totales",
	"totalLosses":                 "Pérdidas Totales",
	"performanceAnalysisPositive": "¡Excelente! Tus ganancias superan por mucho las pérdidas. Sabes identificar activos de valor.",
	"performanceAnalysisNegative": "Tus pérdidas superaron tus ganancias. La gestión de riesgo es fundamental para crecer.",
	"marketCollapseNarrative":     "El mercado ha colapsado por decisiones arriesgadas y alta volatilidad.",
	"smartInvesting":              "Inversión Inteligente",

	"whyStocks":      "Las acciones ofrecen alto potencial de crecimiento y dividendos, con volatilidad de mercado.",
	"whyRealEstate":  "Los bienes raíces brindan seguridad e ingresos por rentas, y protegen contra la inflación.",
	"whyEducation":   "La educación es una inversión en capital humano que aumenta tus ingresos a largo plazo.",
	"whyCommercial":  "Los edificios comerciales ofrecen mayores rendimientos y contratos más largos que la vivienda.",
	"whyMaintenance": "El mantenimiento es un pasivo recurrente. Descuidarlo genera depreciación y reparaciones costosas.",
	"whyInterest":    "Las alzas de tasas encarecen la deuda y consumen tu flujo de caja.",
	"whyCrash":       "Un colapso es riesgo sistémico. Solo las reservas de emergencia lo resisten.",
}
