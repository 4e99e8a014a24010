package permission

// rbacModel grants a role every permission of the roles it inherits via g.
const rbacModel = `
[request_definition]
r = sub, obj, act

[policy_definition]
p = sub, obj, act

[role_definition]
g = _, _

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = g(r.sub, p.sub) && r.obj == p.obj && r.act == p.act
`

// Resources guarded by the HTTP layer.
const (
	ResourceReport       = "report"
	ResourceCategory     = "category"
	ResourceLocation     = "location"
	ResourceOrganization = "organization"
	ResourceUser         = "user"
	ResourceProfile      = "profile"
	ResourceNotification = "notification"
	ResourceAnalytics    = "analytics"
)

const (
	ActionCreate    = "create"
	ActionRead      = "read"
	ActionUpdate    = "update"
	ActionDelete    = "delete"
	ActionList      = "list"
	ActionAssign    = "assign"
	ActionLock      = "lock"
	ActionExport    = "export"
	ActionSend      = "send"
	ActionBroadcast = "broadcast"
)
