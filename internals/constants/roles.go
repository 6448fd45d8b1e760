package constants

// Papéis de plataforma (tabela users.role)
const (
	RoleOwner  = "owner"  // dono da plataforma, provisiona academias
	RoleAdmin  = "admin"  // dono/administrador de uma academia
	RoleStaff  = "staff"  // funcionário da academia
	RoleMember = "member" // aluno com acesso ao portal
)

// Módulos habilitáveis por tenant
const (
	ModuleAcademia = "academia"
)

var AllowedRoles = []string{RoleOwner, RoleAdmin, RoleStaff, RoleMember}

// Grupos usados pelos middlewares de rota
var (
	OwnerOnly      = []string{RoleOwner}
	AcademiaAdmins = []string{RoleOwner, RoleAdmin, RoleStaff}
	MemberAndUp    = []string{RoleOwner, RoleAdmin, RoleStaff, RoleMember}
)

const RoleErrorTemplate = "Acesso negado: apenas %s podem acessar este recurso"
