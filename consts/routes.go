package consts

// Path syntax
const (
	RuneFwdSlash = '/'
	RuneColon    = ':'
	StrSlash     = "/"
)

// Route names as used by the layout and navigation code.
const (
	RouteHome          = "home"
	RouteLogin         = "login"
	RouteRegister      = "register"
	RouteDashboard     = "dashboard"
	RouteProfile       = "profile"
	RouteSettings      = "settings"
	RouteProjects      = "projects"
	RouteProjectNew    = "project-new"
	RouteProject       = "project"
	RouteQuotes        = "quotes"
	RouteQuote         = "quote"
	RouteRequests      = "requests"
	RouteRequest       = "request"
	RouteMessages      = "messages"
	RouteNotifications = "notifications"
	RoutePayments      = "payments"
	RouteAdmin         = "admin"
	RouteAdminUsers    = "admin-users"
	RouteAdminUser     = "admin-user"
	RouteServices      = "services"
	RoutePortfolio     = "portfolio"
	RouteAbout         = "about"
	RouteContact       = "contact"
)

// Route templates, keyed by the names above in Routes.
const (
	PathHome          = "/"
	PathLogin         = "/login"
	PathRegister      = "/register"
	PathDashboard     = "/dashboard"
	PathProfile       = "/profile"
	PathSettings      = "/settings"
	PathProjects      = "/projects"
	PathProjectNew    = "/projects/new"
	PathProject       = "/projects/:projectId"
	PathQuotes        = "/projects/:projectId/quotes"
	PathQuote         = "/projects/:projectId/quotes/:quoteId"
	PathRequests      = "/requests"
	PathRequest       = "/requests/:requestId"
	PathMessages      = "/messages"
	PathNotifications = "/notifications"
	PathPayments      = "/payments"
	PathAdmin         = "/admin"
	PathAdminUsers    = "/admin/users"
	PathAdminUser     = "/admin/users/:userId"
	PathServices      = "/services"
	PathPortfolio     = "/portfolio"
	PathAbout         = "/about"
	PathContact       = "/contact"
)

// Routes is the static NestLancer route table in registration order.
// Static routes that shadow a parameter route (/projects/new) come first.
var Routes = [][2]string{
	{RouteHome, PathHome},
	{RouteLogin, PathLogin},
	{RouteRegister, PathRegister},
	{RouteDashboard, PathDashboard},
	{RouteProfile, PathProfile},
	{RouteSettings, PathSettings},
	{RouteProjects, PathProjects},
	{RouteProjectNew, PathProjectNew},
	{RouteProject, PathProject},
	{RouteQuotes, PathQuotes},
	{RouteQuote, PathQuote},
	{RouteRequests, PathRequests},
	{RouteRequest, PathRequest},
	{RouteMessages, PathMessages},
	{RouteNotifications, PathNotifications},
	{RoutePayments, PathPayments},
	{RouteAdmin, PathAdmin},
	{RouteAdminUsers, PathAdminUsers},
	{RouteAdminUser, PathAdminUser},
	{RouteServices, PathServices},
	{RoutePortfolio, PathPortfolio},
	{RouteAbout, PathAbout},
	{RouteContact, PathContact},
}
