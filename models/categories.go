package models

// Predefined Mini App category names accepted by the create endpoint's
// appCategory parameter. The remote API expects the Vietnamese display
// names verbatim.
//
// Reference: https://miniapp.zaloplatforms.com/documents/open-apis/partner/list-categories/
const (
	AppCategoryBusiness    = "Kinh doanh"
	AppCategoryEcommerce   = "Thương mại điện tử"
	AppCategoryEducation   = "Giáo dục"
	AppCategoryFinance     = "Tài chính"
	AppCategoryGame        = "Trò chơi"
	AppCategoryGovernment  = "Nhà nước & Chính phủ"
	AppCategoryHealth      = "Sức khỏe"
	AppCategoryImages      = "Hình ảnh & Video"
	AppCategoryNews        = "Thông tin & Báo chí"
	AppCategoryOfflineSale = "Bán hàng Offline"
	AppCategorySound       = "Âm thanh & Radio"
	AppCategoryTools       = "Công cụ phát triển"
	AppCategoryTraveling   = "Du lịch"
	AppCategoryDemo        = "Thử nghiệm"
	AppCategoryUtilities   = "Tiện ích"
	AppCategoryOthers      = "Khác"
)
