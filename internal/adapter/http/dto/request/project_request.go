package request

type ProjectRequest struct {
	Name          string  `json:"name" binding:"required"`
	Location      string  `json:"location"`
	ContractValue float64 `json:"contract_value"`
}

type CompanyRequest struct {
	Name          string `json:"name" binding:"required"`
	IsGroupMember bool   `json:"is_group_member"`
}
